// Package domain contains the core entities shared across the application:
// canonical link domains, the email fields handed over by the mail client
// integration, and the feature payload sent on to the classifier. They are
// free of infrastructure concerns so every package can depend on them.
package domain
