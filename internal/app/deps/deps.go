package deps

import (
	"context"
	"fmt"
	"studiobooking/internal/config"
	"studiobooking/internal/core/domain/alerting"
	dl "studiobooking/internal/core/domain/logging"
	drl "studiobooking/internal/core/domain/rate_limiter"
	"studiobooking/internal/core/domain/user"
	dbresettoken "studiobooking/internal/db/resettoken"
	dbuser "studiobooking/internal/db/user"
	sentryalerting "studiobooking/internal/implementations/alerting"
	"studiobooking/internal/implementations/email"
	"studiobooking/internal/implementations/logging"
	passwordhasher "studiobooking/internal/implementations/password_hasher"
	ratelimiter "studiobooking/internal/implementations/rate_limiter"
	resettokengenerator "studiobooking/internal/implementations/reset_token_generator"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB    *pgxpool.Pool
	Redis *redis.Client

	Now func() time.Time

	UserRepository          user.UserRepository
	PasswordResetRepository user.PasswordResetRepository

	RateLimiter drl.RateLimiter
	Alerter     alerting.Alerter

	EmailSender *email.EmailSender

	ResetTokenGenerator user.ResetTokenGenerator
	ResetTokenSender    user.ResetTokenSender
	PasswordHasher      user.PasswordHasher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.PasswordResetRepository = dbresettoken.NewPgxRepository(deps.DB)

	deps.EmailSender = email.NewEmailSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailPasswordResetTemplate,
		deps.Config.PasswordResetBaseURL,
	)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.ResetTokenGenerator = resettokengenerator.NewGenerator()
	deps.ResetTokenSender = deps.EmailSender

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		// A reset email is sent at most once, the caller can always restart
		// the flow.
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), 1)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn == "" {
		deps.Logger.Info(context.Background(), "Sentry is disabled.")
		deps.Alerter = sentryalerting.NewNoop()
		return func() {}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              deps.Config.SentryDsn,
		TracesSampleRate: 0.01,
	})
	if err != nil {
		panic(fmt.Sprintf("could not init Sentry: %v\n", err))
	}
	deps.Alerter = sentryalerting.NewSentry()
	deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
	return func() {
		ok := sentry.Flush(5 * time.Second)
		deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
	}
}
