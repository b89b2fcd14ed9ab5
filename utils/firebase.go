// utils/firebase.go
package utils

import (
	"context"
	"log"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client. Push is an
// optional facility; a missing credentials file disables it instead of
// aborting startup.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Printf("firebase: error initializing app, push disabled: %v", err)
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("firebase: error getting Messaging client, push disabled: %v", err)
		return
	}

	FCMClient = client
}
