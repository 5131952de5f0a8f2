package identikit

import "github.com/shopspring/decimal"

// GenerateKey constructs an Identikit and derives its idempotency key in a
// single call. It accepts the full option set: the construction options
// (WithNarration, WithClientID, WithIntervalMinutes) plus WithTimestamp and
// WithAlgorithm for the derivation itself.
//
// Error behavior is identical to calling New followed by IdempotencyKey.
func GenerateKey(
	receiverBankCode, receiverAccountNumber string,
	senderBankCode, senderAccountNumber string,
	amount decimal.Decimal,
	clientType ClientType,
	clientLocation string,
	opts ...Option,
) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	kit, err := New(
		receiverBankCode, receiverAccountNumber,
		senderBankCode, senderAccountNumber,
		amount, clientType, clientLocation,
		opts...,
	)
	if err != nil {
		return "", err
	}
	return kit.IdempotencyKey(cfg.at, cfg.algorithm)
}
