package email

import (
	"fmt"
	"strings"
)

// OrderItem is the line detail rendered in confirmation emails
type OrderItem struct {
	Name     string
	Quantity int
	Total    float64
}

// BuildOrderConfirmationBody renders the order confirmation email in Ukrainian and Russian
func BuildOrderConfirmationBody(reference string, total float64, currency string, items []OrderItem) string {
	var rows strings.Builder
	for _, item := range items {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%.2f %s</td></tr>",
			item.Name, item.Quantity, item.Total, currency))
	}

	return fmt.Sprintf(`<html>
<body>
<h2>Дякуємо за замовлення!</h2>
<p>Ваше замовлення <strong>%s</strong> прийнято в обробку.</p>
<table border="1" cellpadding="6" cellspacing="0">
<tr><th>Товар</th><th>Кількість</th><th>Сума</th></tr>
%s
</table>
<p>Разом до сплати: <strong>%.2f %s</strong></p>
<hr>
<h2>Спасибо за заказ!</h2>
<p>Ваш заказ <strong>%s</strong> принят в обработку.</p>
<p>Итого к оплате: <strong>%.2f %s</strong></p>
</body>
</html>`, reference, rows.String(), total, currency, reference, total, currency)
}

// BuildPaymentReceivedBody renders the payment received email in Ukrainian and Russian
func BuildPaymentReceivedBody(reference string, amount float64, currency string) string {
	return fmt.Sprintf(`<html>
<body>
<h2>Оплату отримано</h2>
<p>Ми отримали оплату <strong>%.2f %s</strong> за замовлення <strong>%s</strong>.</p>
<p>Замовлення передано у виробництво.</p>
<hr>
<h2>Оплата получена</h2>
<p>Мы получили оплату <strong>%.2f %s</strong> за заказ <strong>%s</strong>.</p>
<p>Заказ передан в производство.</p>
</body>
</html>`, amount, currency, reference, amount, currency, reference)
}

// BuildPaymentProcessingBody renders the payment in progress email in Ukrainian and Russian
func BuildPaymentProcessingBody(reference string) string {
	return fmt.Sprintf(`<html>
<body>
<h2>Оплата обробляється</h2>
<p>Оплата замовлення <strong>%s</strong> обробляється платіжною системою.</p>
<p>Ми повідомимо вас, щойно отримаємо підтвердження.</p>
<hr>
<h2>Оплата обрабатывается</h2>
<p>Оплата заказа <strong>%s</strong> обрабатывается платёжной системой.</p>
<p>Мы сообщим вам, как только получим подтверждение.</p>
</body>
</html>`, reference, reference)
}

// BuildPaymentFailedBody renders the payment failure email in Ukrainian and Russian
func BuildPaymentFailedBody(reference string) string {
	return fmt.Sprintf(`<html>
<body>
<h2>Оплата не пройшла</h2>
<p>На жаль, оплата замовлення <strong>%s</strong> не пройшла.</p>
<p>Ви можете повторити спробу оплати у будь-який час.</p>
<hr>
<h2>Оплата не прошла</h2>
<p>К сожалению, оплата заказа <strong>%s</strong> не прошла.</p>
<p>Вы можете повторить попытку оплаты в любое время.</p>
</body>
</html>`, reference, reference)
}

// BuildOrderShippedBody renders the shipment notice in Ukrainian and Russian
func BuildOrderShippedBody(reference, trackingRef string) string {
	return fmt.Sprintf(`<html>
<body>
<h2>Замовлення відправлено</h2>
<p>Ваше замовлення <strong>%s</strong> передано перевізнику.</p>
<p>Номер ТТН для відстеження: <strong>%s</strong></p>
<hr>
<h2>Заказ отправлен</h2>
<p>Ваш заказ <strong>%s</strong> передан перевозчику.</p>
<p>Номер ТТН для отслеживания: <strong>%s</strong></p>
</body>
</html>`, reference, trackingRef, reference, trackingRef)
}
