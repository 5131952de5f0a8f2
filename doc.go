// Package identikit derives deterministic idempotency keys for payment
// transactions from their metadata.
//
// # Overview
//
// A payment submitted twice — a client retry, a double click, a replayed
// request — should be processed once. This package derives a key from the
// transaction's identity fields so that duplicate submissions of the same
// logical transaction within a bounded time window collapse to the same key,
// while distinct transactions (different parties, amount, or time window)
// produce distinct keys.
//
// The derivation is pure and stateless: no network, no storage, no
// persistence. A consuming system stores the returned key (typically as the
// primary lookup key of an idempotency table) and decides what to do on a
// collision. This package does not detect or reject duplicates itself.
//
// # The Identikit
//
// An Identikit is the normalized bundle of identity signatures for one
// transaction:
//
//   - RBC: receiver's bank code
//   - RAN: receiver's account number
//   - SBC: sender's bank code
//   - SAN: sender's account number
//   - TTC: transaction timecode (time-bucket identifier)
//   - TAMT: transaction amount
//   - ITN: internal transaction narration (optional)
//   - CTYPE: client type
//   - CID: client id (optional)
//   - CLOC: client location
//
// Bank codes are uppercased and trimmed; account numbers and location are
// trimmed only. Validation runs at construction and fails fast with an
// *InvalidInputError naming the offending field.
//
// # Key Derivation
//
// The receiver-side fields and the sender-side fields are joined into two
// separate "|"-delimited strings, each is hashed independently, and the two
// lowercase hex digests are joined with a period:
//
//	receiverHex.senderHex
//
// The split lets a consumer compare receiver-only or sender-only duplication
// by looking at each half on its own; ReceiverDigest and SenderDigest expose
// the halves directly.
//
// The sender string includes the timecode, a bucket identifier of the form
// YYYYMMDDHH plus the bucket's starting minute (default bucket width 15
// minutes). Two submissions whose instants land in the same bucket hash to
// the same key; submissions in adjacent buckets do not.
//
// # Usage
//
// Construct once, derive as needed:
//
//	kit, err := identikit.New(
//	    "BANK001", "1234567890",
//	    "BANK002", "9876543210",
//	    decimal.NewFromFloat(1000.50),
//	    identikit.ClientTypeWebApp,
//	    "US-CA-SF",
//	    identikit.WithNarration("PAYMENT"),
//	    identikit.WithClientID("client-device-12345"),
//	)
//	if err != nil {
//	    return err
//	}
//	key, err := kit.IdempotencyKey(txTime, identikit.SHA256)
//
// Or in one shot:
//
//	key, err := identikit.GenerateKey(
//	    "BANK001", "1234567890",
//	    "BANK002", "9876543210",
//	    decimal.NewFromFloat(1000.50),
//	    identikit.ClientTypeWebApp,
//	    "US-CA-SF",
//	    identikit.WithTimestamp(txTime),
//	)
//
// Passing the zero time.Time uses the current UTC time. Production callers
// that need reproducible keys across services should pass the transaction's
// own timestamp explicitly.
//
// # Determinism
//
// Identical fields + an instant in the same time bucket + the same algorithm
// yield a byte-identical key, on every call and across process restarts.
// Nothing random enters the derivation. Every invocation operates only on its
// own immutable input, so concurrent use needs no coordination.
package identikit
