package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"studiobooking/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                string
	passwordResetTemplate string
	passwordResetBaseUrl  url.URL
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *EmailSender {
	return &EmailSender{
		ses:                   ses.NewFromConfig(awsConfig),
		sender:                sender,
		passwordResetTemplate: passwordResetTemplate,
		passwordResetBaseUrl:  passwordResetBaseUrl,
	}
}

func (s *EmailSender) SendResetToken(ctx context.Context, u user.User, token user.ResetToken) error {
	if u.Email == "" {
		return errors.New("user email is not defined")
	}

	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{
			FullName:         u.FullName,
			PasswordResetUrl: s.resetLink(u.ID, token),
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	email := string(u.Email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &s.passwordResetTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

// resetLink embeds both the token and the user identifier, the reset form
// needs both to complete the flow.
func (s *EmailSender) resetLink(userID user.ID, token user.ResetToken) string {
	link := s.passwordResetBaseUrl
	query := link.Query()
	query.Set("token", string(token))
	query.Set("userId", string(userID))
	link.RawQuery = query.Encode()
	return link.String()
}

type passwordResetTemplateParams struct {
	FullName         string `json:"fullName"`
	PasswordResetUrl string `json:"passwordResetUrl"`
}
