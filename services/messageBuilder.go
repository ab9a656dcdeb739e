package services

import (
	"fmt"
	"html"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/UpliftAfrika/models"
)

// Channel body limits. SMS segments are 160 GSM characters; Twilio caps
// WhatsApp template-free bodies at 1024 characters.
const (
	SMSMaxLength      = 160
	WhatsAppMaxLength = 1024
)

// SiteURL returns the public site base URL without a trailing slash.
func SiteURL() string {
	url := os.Getenv("SITE_URL")
	if url == "" {
		url = "https://upliftyourmorning.com"
	}
	return strings.TrimRight(url, "/")
}

// BuildDevotionText renders the full plain-text devotion body used for email.
func BuildDevotionText(devotion models.Devotion) string {
	var parts []string

	if devotion.Scripture_Reference != "" {
		parts = append(parts, fmt.Sprintf("Scripture: %s", devotion.Scripture_Reference))
		if devotion.Passage_Text != "" {
			parts = append(parts, devotion.Passage_Text)
		}
	}
	if devotion.Body != "" {
		parts = append(parts, devotion.Body)
	}
	if devotion.Reflection != "" {
		parts = append(parts, "Reflection:\n"+devotion.Reflection)
	}
	if devotion.Prayer != "" {
		parts = append(parts, "Prayer:\n"+devotion.Prayer)
	}
	if devotion.Action_Point != "" {
		parts = append(parts, "Action Point:\n"+devotion.Action_Point)
	}

	return strings.Join(parts, "\n\n")
}

// BuildDevotionEmail renders the subject, plain-text and HTML bodies for the
// daily devotion email.
func BuildDevotionEmail(devotion models.Devotion) (subject string, textBody string, htmlBody string) {
	siteURL := SiteURL()
	devotionURL := fmt.Sprintf("%s/devotions/%s/", siteURL, devotion.Slug)

	subject = fmt.Sprintf("Daily Devotion - %s", devotion.Title)

	textBody = fmt.Sprintf(`Good Morning!

Here's today's daily devotion from Uplift Your Morning:

%s

%s

Read the full devotion online: %s

Have a blessed day!

---
Uplift Your Morning
Start Your Day Right. Uplift Your Morning.

To unsubscribe, visit: %s/subscriptions/unsubscribe/`,
		devotion.Title, BuildDevotionText(devotion), devotionURL, siteURL)

	var htmlParts strings.Builder
	if devotion.Scripture_Reference != "" {
		fmt.Fprintf(&htmlParts, "<p><strong>Scripture:</strong> %s</p>", html.EscapeString(devotion.Scripture_Reference))
		if devotion.Passage_Text != "" {
			fmt.Fprintf(&htmlParts, "<blockquote>%s</blockquote>", html.EscapeString(devotion.Passage_Text))
		}
	}
	if devotion.Body != "" {
		fmt.Fprintf(&htmlParts, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(devotion.Body), "\n", "<br>"))
	}
	if devotion.Reflection != "" {
		fmt.Fprintf(&htmlParts, "<p><strong>Reflection:</strong><br>%s</p>", html.EscapeString(devotion.Reflection))
	}
	if devotion.Prayer != "" {
		fmt.Fprintf(&htmlParts, "<p><strong>Today's Prayer:</strong><br>%s</p>", html.EscapeString(devotion.Prayer))
	}
	if devotion.Action_Point != "" {
		fmt.Fprintf(&htmlParts, "<p><strong>Action Point:</strong><br>%s</p>", html.EscapeString(devotion.Action_Point))
	}

	htmlBody = fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 20px 0;
            border-bottom: 2px solid #d4a017;
        }
        .header h1 {
            color: #d4a017;
            margin: 0;
        }
        .content {
            padding: 30px 0;
        }
        blockquote {
            border-left: 3px solid #d4a017;
            margin: 10px 0;
            padding-left: 15px;
            font-style: italic;
        }
        .footer {
            text-align: center;
            padding: 20px 0;
            border-top: 1px solid #ddd;
            font-size: 12px;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Uplift Your Morning</h1>
    </div>

    <div class="content">
        <p>Good Morning!</p>

        <h2>%s</h2>

        %s

        <p><a href="%s">Read the full devotion online</a></p>

        <p>Have a blessed day!</p>
    </div>

    <div class="footer">
        <p>Start Your Day Right. Uplift Your Morning.</p>
        <p><a href="%s/subscriptions/unsubscribe/">Unsubscribe</a></p>
    </div>
</body>
</html>
`, html.EscapeString(devotion.Title), htmlParts.String(), devotionURL, siteURL)

	return subject, textBody, htmlBody
}

// BuildNoDevotionEmail renders the fallback email sent with --force when no
// devotion is published for the day.
func BuildNoDevotionEmail() (subject string, textBody string) {
	siteURL := SiteURL()

	subject = "Daily Devotion - Uplift Your Morning"
	textBody = fmt.Sprintf(`Good Morning!

Thank you for subscribing to Uplift Your Morning daily devotions.

We don't have a devotion published for today, but we wanted to let you know we're thinking of you!

Visit our website for previous devotions and resources: %s/devotions/

Have a blessed day!

---
Uplift Your Morning
Start Your Day Right. Uplift Your Morning.

To unsubscribe, visit: %s/subscriptions/unsubscribe/`, siteURL, siteURL)

	return subject, textBody
}

// BuildDevotionSMS renders the devotion as a single SMS segment. The body is
// truncated on a word boundary so that the read-online link always survives.
func BuildDevotionSMS(devotion models.Devotion) string {
	devotionURL := fmt.Sprintf("%s/devotions/%s/", SiteURL(), devotion.Slug)
	suffix := " Read more: " + devotionURL

	lead := devotion.Title
	if devotion.Scripture_Reference != "" {
		lead = fmt.Sprintf("%s (%s)", devotion.Title, devotion.Scripture_Reference)
	}
	lead = "Uplift Your Morning: " + lead + "."

	return TruncateForChannel(lead, SMSMaxLength-utf8.RuneCountInString(suffix)) + suffix
}

// BuildDevotionWhatsApp renders the devotion for WhatsApp, capped at the
// gateway's body limit.
func BuildDevotionWhatsApp(devotion models.Devotion) string {
	devotionURL := fmt.Sprintf("%s/devotions/%s/", SiteURL(), devotion.Slug)
	suffix := fmt.Sprintf("\n\nRead the full devotion: %s", devotionURL)

	body := fmt.Sprintf("*%s*\n\n%s", devotion.Title, BuildDevotionText(devotion))

	return TruncateForChannel(body, WhatsAppMaxLength-utf8.RuneCountInString(suffix)) + suffix
}

// TruncateForChannel shortens a message to at most max runes, cutting on a
// word boundary and appending an ellipsis when truncation happened.
func TruncateForChannel(message string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(message) <= max {
		return message
	}

	runes := []rune(message)
	cut := string(runes[:max-1])

	// Back up to the last space so a word is never split mid-way. When the
	// cut already lands on a word end there is nothing to back up.
	if next := runes[max-1]; next != ' ' && next != '\n' {
		if idx := strings.LastIndexAny(cut, " \n"); idx > 0 {
			cut = cut[:idx]
		}
	}

	return strings.TrimRight(cut, " \n") + "…"
}
