package init_payment

// Request модель запроса на инициализацию оплаты блока
type Request struct {
	BlockID string // ID блока, который оплачивается
	// Процент от полной стоимости (50 предоплата или 100)
	PaidPercent int
}

// Response модель ответа с данными для редиректа на оплату
type Response struct {
	PaymentID int64  // ID транзакции в нашей БД
	OrderID   string // Номер заказа, переданный в шлюз
	Token     string // Токен транзакции шлюза
	URL       string // URL редиректа клиента на форму оплаты
	Amount    int64  // Сумма к оплате
}
