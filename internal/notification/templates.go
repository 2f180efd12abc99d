package notification

import (
	"bytes"
	"html/template"
)

const layout = `{{define "layout"}}<div style="font-family:Arial, Helvetica, sans-serif; font-size:14px;">
{{template "body" .}}
<div style="margin-top:32px; background:#0b3c78; color:#ffffff; padding:24px; border-radius:6px;">
<p style="margin:0 0 8px 0; font-weight:bold; font-size:16px;">ConsultDesk</p>
<p style="margin:0; line-height:1.6;">You are receiving this because you contacted us or booked a session.</p>
</div>
</div>{{end}}`

var templates = map[Kind]*template.Template{
	KindBookingAlert: parse(`{{define "body"}}<p>New booking received.</p>
<p><b>Name:</b> {{.Name}}<br><b>Contact:</b> {{.Contact}}<br><b>Date:</b> {{.Date}}<br><b>Time:</b> {{.Time}}</p>{{end}}`),

	KindBookingConfirmation: parse(`{{define "body"}}<p>Hi {{.Name}},</p>
<p>Your session on <b>{{.Date}}</b> at <b>{{.Time}}</b> is confirmed.</p>{{end}}`),

	KindReviewAlert: parse(`{{define "body"}}<p>New review pending approval.</p>
<p><b>Name:</b> {{.Name}}<br><b>Project:</b> {{.ProjectType}}<br><b>Rating:</b> {{.Rating}}/5</p>
<blockquote>{{.Body}}</blockquote>{{end}}`),

	KindReviewThanks: parse(`{{define "body"}}<p>Thank you for your review. It will appear on the site once approved.</p>{{end}}`),

	KindNewsletterWelcome: parse(`{{define "body"}}<p>Welcome to the newsletter. You are now subscribed as {{.Email}}.</p>{{end}}`),

	KindContactAlert: parse(`{{define "body"}}<p>New contact submission.</p>
<p><b>Name:</b> {{.Name}}<br><b>Email:</b> {{.Email}}<br>{{with .Phone}}<b>Phone:</b> {{.}}<br>{{end}}<b>WhatsApp:</b> {{.WhatsApp}}</p>
<p><b>About the brand:</b> {{.BrandAbout}}</p>
<p><b>Goals:</b> {{.Goals}}</p>
<p><b>Services:</b> {{.Services}}</p>
{{with .Message}}<p><b>Message:</b> {{.}}</p>{{end}}{{end}}`),

	KindContactAck: parse(`{{define "body"}}<p>Hi {{.Name}}, I received your message and will get back to you soon.</p>{{end}}`),

	KindTest: parse(`{{define "body"}}<p>Email delivery is working.</p>{{end}}`),
}

func parse(body string) *template.Template {
	return template.Must(template.Must(template.New("layout").Parse(layout)).Parse(body))
}

// render executes the template for kind. User supplied fields are HTML escaped.
func render(kind Kind, data any) (string, error) {
	t, ok := templates[kind]
	if !ok {
		return "", errUnknownKind(kind)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type errUnknownKind Kind

func (e errUnknownKind) Error() string { return "notification: no template for " + string(e) }
