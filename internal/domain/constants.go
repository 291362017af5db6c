package domain

// Default configuration values
const (
	// DefaultBlockTTLMinutes время жизни временного блока по умолчанию
	// Должно покрывать полный цикл редиректа на платёжный шлюз и обратно
	DefaultBlockTTLMinutes = 5

	// DefaultSweepIntervalSeconds интервал фоновой очистки просроченных блоков
	DefaultSweepIntervalSeconds = 60

	// CommissionPerMille комиссия платёжной системы в промилле
	// (3.5%, справочная, в цену не входит)
	CommissionPerMille = 35
)

// Business validation constants
const (
	MinBlockTTLMinutes = 1
	MaxBlockTTLMinutes = 60

	// PartialPaymentPercent допустимый процент частичной предоплаты
	PartialPaymentPercent = 50
	FullPaymentPercent    = 100

	MaxCustomerNameLength       = 255
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
