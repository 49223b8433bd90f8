package services

import (
	"agrodirect/models"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// OrderNotifier tells the farmers' operations desk about a paid order.
type OrderNotifier interface {
	OrderPlaced(order models.Order) error
}

type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notify")}
}

func (n *LogNotifier) OrderPlaced(order models.Order) error {
	n.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Strings("farmer_ids", order.FarmerIDs),
		zap.Int64("total", order.TotalAmount),
		zap.String("payment_ref", order.PaymentRef),
	)
	return nil
}

type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

type SMTPSettings struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewEmailNotifier(cfg SMTPSettings) (*EmailNotifier, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" || cfg.To == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}
	port := cfg.Port
	if port == 0 {
		port = 587
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}, nil
}

func (n *EmailNotifier) OrderPlaced(order models.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", fmt.Sprintf("New order %s - AgroDirect", shortID(order.ID)))
	m.SetBody("text/html", orderEmailBody(order))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func orderEmailBody(order models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%d x %s</td><td>&#8358;%s</td></tr>",
			item.Name, item.FarmerName, item.CartQuantity, item.Unit, FormatNaira(item.LineTotal()))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2 style="color: #059669;">New order received</h2>
    <p><strong>Order:</strong> %s<br><strong>Payment reference:</strong> %s</p>
    <p><strong>Deliver to:</strong> %s, %s (%s)</p>
    <table cellpadding="6">%s</table>
    <p>Subtotal: &#8358;%s<br>Delivery: &#8358;%s<br><strong>Total: &#8358;%s</strong></p>
    <p style="color: #666; font-size: 12px;">Please contact the buyer to arrange delivery.</p>
</body>
</html>
`, order.ID, order.PaymentRef, order.Address.FullName, order.Address.Street, order.Address.Phone,
		rows.String(), FormatNaira(order.Subtotal), FormatNaira(order.DeliveryFee), FormatNaira(order.TotalAmount))
}

// FormatNaira groups thousands with commas: 14500 -> "14,500".
func FormatNaira(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	str := strconv.FormatInt(amount, 10)
	n := len(str)
	if n <= 3 {
		return sign + str
	}

	var b strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}
