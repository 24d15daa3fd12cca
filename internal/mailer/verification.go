package mailer

import (
	"fmt"
	"html"
)

// VerificationEmail renders the message sent after registration. The link
// embeds a single-use verification token.
func VerificationEmail(name, link string) (subject, body string) {
	subject = "Confirm your Fitness Center registration"
	body = fmt.Sprintf(`
        <h2>Hello, %s!</h2>
        <p>Thank you for registering with Fitness Center.</p>
        <p>To complete your registration, please confirm your email by following the link below:</p>
        <a href="%s" target="_blank" style="
          display:inline-block;
          background:#10b981;
          color:white;
          padding:10px 20px;
          border-radius:8px;
          text-decoration:none;
          font-weight:bold;
        ">Confirm Email</a>
        <p style="margin-top:10px;">If you did not register, simply ignore this message.</p>
    `, html.EscapeString(name), link)
	return subject, body
}
