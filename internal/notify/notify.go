// Package notify отправляет владельцу потерянной вещи письмо о совпадении.
package notify

import (
	"LostFound/internal/model"
	"bytes"
	"context"
	"fmt"
	"html/template"
	"math"
)

// Match - данные для письма о совпадении.
type Match struct {
	Lost  model.Item
	Found model.Item
	Score float64
}

// Notifier доставляет письмо владельцу потерянной вещи.
type Notifier interface {
	NotifyMatch(ctx context.Context, m Match) error
}

// Email - готовое к отправке письмо.
type Email struct {
	To      string
	Subject string
	HTML    string
}

var matchEmailTmpl = template.Must(template.New("match").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #1F2937; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #F5F6FF; }
        .header { background-color: #5B6CFF; color: white; padding: 30px; text-align: center; border-radius: 10px; }
        .content { background-color: white; padding: 30px; margin: 20px 0; border-radius: 10px; }
        .item-details { background-color: #F5F6FF; padding: 15px; margin: 15px 0; border-radius: 8px; }
        .match-score { font-size: 24px; color: #2ED3B7; font-weight: bold; text-align: center; padding: 20px; }
        .contact-info { background-color: #2ED3B7; color: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .footer { text-align: center; color: #6B7280; padding: 20px; }
        img { max-width: 100%; height: auto; border-radius: 8px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Potential Match Found!</h1>
        </div>
        <div class="content">
            <p>Hi {{.Lost.OwnerName}},</p>
            <p>Great news! We found a potential match for your lost item.</p>
            <div class="match-score">Match Confidence: {{.Percent}}%</div>
            <div class="item-details">
                <h3>Your Lost Item</h3>
                <p><strong>Title:</strong> {{.Lost.Title}}</p>
                <p><strong>Category:</strong> {{.Lost.Category}}</p>
                <p><strong>Location:</strong> {{.Lost.Location}}</p>
            </div>
            <div class="item-details">
                <h3>Found Item</h3>
                <p><strong>Title:</strong> {{.Found.Title}}</p>
                <p><strong>Category:</strong> {{.Found.Category}}</p>
                <p><strong>Description:</strong> {{.Found.Description}}</p>
                <p><strong>Location:</strong> {{.Found.Location}}</p>
                <p><strong>Date Found:</strong> {{.Found.Date}}</p>
                {{- with .Found.ImageURL}}
                <p><img src="{{.}}" alt="Found item"/></p>
                {{- end}}
            </div>
            <div class="contact-info">
                <h3>Contact the Finder</h3>
                <p><strong>Name:</strong> {{.Found.OwnerName}}</p>
                <p><strong>Email:</strong> {{.Found.OwnerEmail}}</p>
                {{- with .Found.OwnerPhone}}
                <p><strong>Phone:</strong> {{.}}</p>
                {{- end}}
            </div>
            <p>Please reach out to the finder directly to verify and arrange item recovery.</p>
        </div>
        <div class="footer">
            <p>Lost &amp; Found Platform</p>
        </div>
    </div>
</body>
</html>
`))

// RenderMatchEmail собирает письмо о совпадении для владельца потерянной вещи.
func RenderMatchEmail(m Match) (Email, error) {
	var buf bytes.Buffer
	data := struct {
		Match
		Percent string
	}{Match: m, Percent: fmt.Sprintf("%.0f", math.Round(m.Score))}
	if err := matchEmailTmpl.Execute(&buf, data); err != nil {
		return Email{}, fmt.Errorf("render match email: %w", err)
	}
	return Email{
		To:      m.Lost.OwnerEmail,
		Subject: "Match Found: " + m.Lost.Title,
		HTML:    buf.String(),
	}, nil
}
