package identikit

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultIntervalMinutes is the width of the idempotency time window.
const DefaultIntervalMinutes = 15

const (
	// componentDelimiter separates fields inside the receiver and sender strings.
	componentDelimiter = "|"
	// keyDelimiter joins the receiver and sender digests into the final key.
	keyDelimiter = "."
)

// Identikit is the normalized identity signature of one payment transaction.
//
// It is immutable after construction: every derivation reads the same
// normalized fields and produces a new string, so a single Identikit is safe
// to share across goroutines.
type Identikit struct {
	receiverBankCode      string
	receiverAccountNumber string
	senderBankCode        string
	senderAccountNumber   string
	amount                decimal.Decimal
	clientType            ClientType
	clientLocation        string
	narration             string
	clientID              string
	intervalMinutes       int
}

// New builds a validated Identikit from the transaction's identity fields.
//
// Bank codes are uppercased and trimmed; account numbers and the client
// location are trimmed only. Narration, client id, and the timecode interval
// ride options (WithNarration, WithClientID, WithIntervalMinutes).
//
// Validation fails fast: required fields must be non-empty after
// normalization, the amount must be strictly positive, and the client type
// must be one of the enumerated variants. Violations return an
// *InvalidInputError naming the field.
func New(
	receiverBankCode, receiverAccountNumber string,
	senderBankCode, senderAccountNumber string,
	amount decimal.Decimal,
	clientType ClientType,
	clientLocation string,
	opts ...Option,
) (*Identikit, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	k := &Identikit{
		receiverBankCode:      strings.ToUpper(strings.TrimSpace(receiverBankCode)),
		receiverAccountNumber: strings.TrimSpace(receiverAccountNumber),
		senderBankCode:        strings.ToUpper(strings.TrimSpace(senderBankCode)),
		senderAccountNumber:   strings.TrimSpace(senderAccountNumber),
		amount:                amount,
		clientType:            clientType,
		clientLocation:        strings.TrimSpace(clientLocation),
		narration:             cfg.narration,
		clientID:              cfg.clientID,
		intervalMinutes:       cfg.interval,
	}
	if err := k.validate(); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *Identikit) validate() error {
	required := []struct {
		field string
		value string
	}{
		{"receiver_bank_code", k.receiverBankCode},
		{"receiver_account_number", k.receiverAccountNumber},
		{"sender_bank_code", k.senderBankCode},
		{"sender_account_number", k.senderAccountNumber},
		{"client_location", k.clientLocation},
	}
	for _, r := range required {
		if r.value == "" {
			return &InvalidInputError{Field: r.field, Reason: "cannot be empty"}
		}
	}
	if !k.amount.IsPositive() {
		return &InvalidInputError{Field: "transaction_amount", Reason: "must be greater than 0"}
	}
	if !k.clientType.Valid() {
		return &InvalidInputError{Field: "client_type", Reason: fmt.Sprintf("unknown client type %q", string(k.clientType))}
	}
	return nil
}

// Timecode returns the transaction timecode (TTC) for the given instant: the
// identifier of the time bucket the instant falls into, as a 12-character
// decimal string YYYYMMDDHH followed by the bucket's 2-digit starting minute.
//
// The bucket start is the minute-of-hour floored to the configured interval.
// Any two instants in the same bucket of the same hour produce an identical
// timecode. Intervals that do not divide 60 evenly leave an irregular final
// bucket before the hour boundary (interval 7 buckets start at 0, 7, ...,
// 56); that arithmetic is intentional and unchecked.
//
// The zero time means the current time in UTC. An explicit instant is used
// as supplied, without location conversion.
func (k *Identikit) Timecode(at time.Time) string {
	if at.IsZero() {
		at = time.Now().UTC()
	}
	bucket := (at.Minute() / k.intervalMinutes) * k.intervalMinutes
	return fmt.Sprintf("%s%02d", at.Format("2006010215"), bucket)
}

// IdempotencyKey derives the idempotency key for the given instant and
// digest algorithm, in the form "receiverHex.senderHex".
//
// The zero time means the current time in UTC; the empty algorithm means
// DefaultAlgorithm. An algorithm outside the supported set returns an
// *UnsupportedAlgorithmError before anything is hashed.
func (k *Identikit) IdempotencyKey(at time.Time, algorithm HashAlgorithm) (string, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	if !algorithm.Valid() {
		return "", &UnsupportedAlgorithmError{Algorithm: algorithm}
	}
	receiverHex, err := k.ReceiverDigest(algorithm)
	if err != nil {
		return "", err
	}
	senderHex, err := k.SenderDigest(at, algorithm)
	if err != nil {
		return "", err
	}
	return receiverHex + keyDelimiter + senderHex, nil
}

// ReceiverDigest hashes the receiver-side component string (RBC|RAN) and
// returns the lowercase hex digest. It never depends on sender-side or
// time-side fields, so consumers can compare receiver halves across keys
// to spot receiver-only duplication.
func (k *Identikit) ReceiverDigest(algorithm HashAlgorithm) (string, error) {
	return digest(algorithm, k.receiverString())
}

// SenderDigest hashes the sender-side component string
// (SBC|SAN|TTC|TAMT|ITN|CTYPE|CID|CLOC) for the given instant and returns
// the lowercase hex digest. The zero time means the current time in UTC.
func (k *Identikit) SenderDigest(at time.Time, algorithm HashAlgorithm) (string, error) {
	return digest(algorithm, k.senderString(k.Timecode(at)))
}

func (k *Identikit) receiverString() string {
	return strings.Join([]string{
		k.receiverBankCode,
		k.receiverAccountNumber,
	}, componentDelimiter)
}

func (k *Identikit) senderString(timecode string) string {
	return strings.Join([]string{
		k.senderBankCode,
		k.senderAccountNumber,
		timecode,
		k.amount.StringFixed(2),
		k.narration,
		string(k.clientType),
		k.clientID,
		k.clientLocation,
	}, componentDelimiter)
}

func digest(algorithm HashAlgorithm, s string) (string, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	newHash, ok := algorithm.constructor()
	if !ok {
		return "", &UnsupportedAlgorithmError{Algorithm: algorithm}
	}
	h := newHash()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil)), nil
}
