// Package mailer dispatches rendered mail documents with their structured
// action markup embedded.
//
// A Message carries the rendered HTML body plus the markup objects compiled
// for the document's action blocks; before sending, the markup is injected
// into the HTML head as application/ld+json script tags, which is how mail
// clients discover interactive actions.
//
// Two Sender implementations ship with the package: PostmarkSender for
// production delivery through Postmark's transactional API and DevSender,
// which writes each message to disk as an .html file plus a .json metadata
// file for local inspection.
//
// # Usage
//
//	var cfg mailer.Config
//	config.MustLoad(&cfg)
//	sender := mailer.MustNewPostmarkSender(cfg)
//
//	err := sender.Send(ctx, mailer.Message{
//	    SendTo:   "user@example.com",
//	    Subject:  "Your flight",
//	    BodyHTML: html,
//	    Markup:   compiledMarkup,
//	    Tag:      "itinerary",
//	})
package mailer
