package notifications

import (
	"fmt"
	"html"
	"strings"

	"solarstore/internal/core/domain/model/account"
	"solarstore/internal/core/domain/model/order"
)

// invoiceBody builds the HTML invoice mail sent to the customer. The layout
// mirrors the PDF attachment: order summary, bank-transfer payment details,
// billing information, and the cart table.
func invoiceBody(aggregate *order.Order, details account.Details) string {
	customer := aggregate.Customer()

	var b strings.Builder
	b.WriteString("<h1>Invoice</h1>")
	fmt.Fprintf(&b, "<p>Hello %s,</p>", html.EscapeString(customer.Name()))
	fmt.Fprintf(&b,
		"<p>Thank you for your order! Below is your invoice for Order #%s. A PDF version is attached for your records.</p>",
		aggregate.Number())

	b.WriteString("<h2>Order Summary</h2>")
	fmt.Fprintf(&b, "<p><strong>Order Number:</strong> %s</p>", aggregate.Number())
	b.WriteString("<p><strong>Payment Method:</strong> Bank Transfer</p>")

	b.WriteString("<h2>Payment Details</h2>")
	b.WriteString("<p>Please make the payment to the following account:</p>")
	fmt.Fprintf(&b, "<p><strong>Account Number:</strong> %s</p>", html.EscapeString(details.AccountNumber()))
	fmt.Fprintf(&b, "<p><strong>Bank Name:</strong> %s</p>", html.EscapeString(details.BankName()))
	fmt.Fprintf(&b, "<p><strong>Account Name:</strong> %s</p>", html.EscapeString(details.AccountName()))

	b.WriteString("<h2>Billing Information</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(customer.Name()))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(customer.Email()))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(customer.Phone()))
	fmt.Fprintf(&b, "<p><strong>Shipping Address:</strong> %s</p>", html.EscapeString(customer.Address()))

	b.WriteString("<h2>Order Items</h2>")
	b.WriteString("<table><thead><tr><th>Item</th><th>Qty</th><th>Price</th><th>Subtotal</th></tr></thead><tbody>")
	for _, item := range aggregate.Items() {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(item.Name()), item.Quantity(), item.UnitPrice(), item.Subtotal())
	}
	b.WriteString("</tbody></table>")
	fmt.Fprintf(&b, "<p><strong>Total:</strong> %s</p>", aggregate.TotalPrice())

	return b.String()
}

// adminNewOrderBody builds the new-order alert sent to the admin address.
func adminNewOrderBody(aggregate *order.Order, details account.Details) string {
	customer := aggregate.Customer()

	var b strings.Builder
	b.WriteString("<h2>New Order Received</h2>")
	fmt.Fprintf(&b, "<p><strong>Order Number:</strong> %s</p>", aggregate.Number())
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(customer.Name()))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(customer.Email()))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(customer.Phone()))
	fmt.Fprintf(&b, "<p><strong>Address:</strong> %s</p>", html.EscapeString(customer.Address()))
	fmt.Fprintf(&b, "<p><strong>Total Price:</strong> %s</p>", aggregate.TotalPrice())

	b.WriteString("<h3>Order Items:</h3><ul>")
	for _, item := range aggregate.Items() {
		fmt.Fprintf(&b, "<li>%s - %d x %s</li>",
			html.EscapeString(item.Name()), item.Quantity(), item.UnitPrice())
	}
	b.WriteString("</ul>")

	b.WriteString("<h3>Payment Details:</h3>")
	b.WriteString("<p>Please provide the following account details to the customer for payment:</p>")
	fmt.Fprintf(&b, "<p><strong>Account Number:</strong> %s</p>", html.EscapeString(details.AccountNumber()))
	fmt.Fprintf(&b, "<p><strong>Bank Name:</strong> %s</p>", html.EscapeString(details.BankName()))
	fmt.Fprintf(&b, "<p><strong>Account Name:</strong> %s</p>", html.EscapeString(details.AccountName()))
	b.WriteString("<p>Check the admin dashboard for more details.</p>")

	return b.String()
}

// statusChangeBody builds the notice sent to the customer on a status change.
func statusChangeBody(aggregate *order.Order) string {
	return fmt.Sprintf(
		"<p>Your order (Order #%s) status has been updated to %s.</p>",
		aggregate.Number(), aggregate.Status())
}

// digestBody builds the scheduled pending-orders summary for the admin.
func digestBody(entries []DigestEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Pending Orders</h2><p>%d order(s) are awaiting shipment:</p>", len(entries))
	b.WriteString("<table><thead><tr><th>Order</th><th>Customer</th><th>Total</th><th>Placed</th></tr></thead><tbody>")
	for _, e := range entries {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			e.Number, html.EscapeString(e.CustomerName), e.TotalPrice, e.PlacedAt)
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
