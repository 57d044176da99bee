package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Printf("AWS config load failed, mail disabled: %v", err)
		return
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return fmt.Errorf("mailer not configured")
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// Forgot Password email sender
func SendResetEmail(to string, token string) error {
	subject := "Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the dashboard to set a new password.", token)
	return sendEmail(to, subject, body)
}

// Appointment confirmation sent to the patient when a visit is booked or
// its status changes.
func SendAppointmentEmail(to, patientName, clinicName string, startsAt time.Time, status string) error {
	subject := fmt.Sprintf("Your appointment at %s", clinicName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment on %s is now %s.\n\n%s",
		patientName,
		startsAt.Format("Mon 02 Jan 2006 15:04"),
		status,
		clinicName,
	)
	return sendEmail(to, subject, body)
}
