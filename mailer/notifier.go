package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/webirent/webirent-api/models"
)

var adminMailTmpl = template.Must(template.New("admin").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1>New Order Received!</h1>
  <p>Order Number: <strong>{{.OrderNumber}}</strong></p>
  <p>Business Name: <strong>{{.BusinessName}}</strong></p>
  <p>Customer Email: <strong>{{.CustomerEmail}}</strong></p>
  <p>Template: <strong>{{.TemplateName}}</strong></p>
  <p>Amount: <strong>&#8377;{{printf "%.2f" .Amount}}</strong></p>
  <div style="margin: 20px 0; padding: 20px; background-color: #f5f5f5; border-radius: 5px;">
    <h2>Customer Requirements:</h2>
    <p>{{.Requirements}}</p>
  </div>
  <p style="color: #666666; font-size: 14px;">Please process this order as soon as possible.</p>
</div>`))

var customerMailTmpl = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1>Thank you for your order, {{.FirstName}}!</h1>
  <p>Your order <strong>{{.OrderNumber}}</strong> has been successfully processed.</p>
  <div style="margin: 20px 0; padding: 20px; background-color: #f5f5f5; border-radius: 5px;">
    <p>Template: <strong>{{.TemplateName}}</strong></p>
    <p>Amount Paid: <strong>&#8377;{{printf "%.2f" .Amount}}</strong></p>
  </div>
  <p>We'll review your requirements and contact you within 24 hours.</p>
  <p style="color: #666666; font-size: 14px;">If you have any questions, please reply to this email.</p>
</div>`))

type orderMailData struct {
	OrderNumber   string
	BusinessName  string
	CustomerEmail string
	TemplateName  string
	Amount        float64
	Requirements  string
	FirstName     string
}

// NotifyResult carries the outcome of each send. Both are attempted
// regardless of the other; neither is retried.
type NotifyResult struct {
	AdminErr    error
	CustomerErr error
}

func (r NotifyResult) Failed() bool {
	return r.AdminErr != nil || r.CustomerErr != nil
}

// OrderNotifier renders and sends the two transactional emails for a
// completed checkout: an alert to the admin and a confirmation to the
// buyer.
type OrderNotifier struct {
	Sender     Sender
	AdminEmail string
	FromEmail  string
}

func (n *OrderNotifier) Notify(ctx context.Context, order *models.Order, tmpl *models.Template, buyer models.Identity) NotifyResult {
	data := orderMailData{
		OrderNumber:   order.OrderNumber,
		BusinessName:  order.CustomerDetails.BusinessName,
		CustomerEmail: order.UserEmail,
		TemplateName:  tmpl.Name,
		Amount:        order.TotalPrice,
		Requirements:  order.CustomerDetails.Requirements,
		FirstName:     firstName(buyer.Name),
	}

	var result NotifyResult
	result.AdminErr = n.send(ctx, adminMailTmpl, data, n.AdminEmail,
		fmt.Sprintf("New Order: %s", order.OrderNumber))
	result.CustomerErr = n.send(ctx, customerMailTmpl, data, order.UserEmail,
		fmt.Sprintf("Your Order #%s", order.OrderNumber))
	return result
}

func (n *OrderNotifier) send(ctx context.Context, tmpl *template.Template, data orderMailData, to, subject string) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}
	return n.Sender.Send(ctx, Email{
		From:    n.FromEmail,
		To:      to,
		Subject: subject,
		HTML:    body.String(),
	})
}

// firstName pulls the leading word out of a display name, falling back
// to "Customer" when there is nothing usable.
func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "Customer"
	}
	return fields[0]
}
