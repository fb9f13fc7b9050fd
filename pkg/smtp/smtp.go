package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sportsync/club-service/pkg/logger/types"
	"gopkg.in/gomail.v2"
)

// Client sends transactional mail for the club service.
type Client struct {
	dialer *gomail.Dialer
	from   string
	domain string
	logger *types.Logger
}

func NewClient(dialer *gomail.Dialer, from, domain string, logger *types.Logger) *Client {
	return &Client{
		dialer: dialer,
		from:   from,
		domain: domain,
		logger: logger,
	}
}

// SendInviteEmail mails a club invite link. Delivery is fire-and-log: a
// failed send is reported but never fails the issuing flow.
func (c *Client) SendInviteEmail(to, clubName, link string) {
	msg := gomail.NewMessage()

	msg.SetHeader("Message-ID", generateMessageID(c.domain))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("You are invited to join %s", clubName))
	msg.SetBody("text/plain", fmt.Sprintf("Join %s on SportSync: %s", clubName, link))
	msg.AddAlternative("text/html", fmt.Sprintf(`<p>Join <b>%s</b> on SportSync: <a href="%s">%s</a></p>`, clubName, link, link))

	if err := c.dialer.DialAndSend(msg); err != nil {
		c.logger.Errorf("failed to send invite email to %s: %v", to, err)
		return
	}
	c.logger.Infof("invite email sent to %s", to)
}

func generateMessageID(domain string) string {
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}
