// Package skyetel provides a client for the Skyetel telephony REST API.
//
// The client covers call recordings and transcriptions, billing statements,
// SIP endpoints, phone-number inventory and ordering, E911 addresses, SMS
// receipts, traffic statistics, and tenant management.
//
// # Architecture
//
//   - Client: one authenticated session, rate-limited to the API's
//     documented ceiling of 120 calls per rolling minute. Callers that
//     would exceed the quota are suspended, not rejected.
//   - Models: immutable typed records. String-encoded numbers and
//     fixed-offset timestamps on the wire are coerced during decoding.
//   - ListOptions / NumberSearchFilter: structured query building. The
//     availability filter validates its mutual-exclusivity rules before
//     anything reaches the wire.
//   - Errors: UnavailableError (transport), APIError (non-200 with the
//     server's message), ValidationError (bad filter or payload, raised
//     client-side), DecodeError (response shape drift).
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := skyetel.NewClient(sid, secret, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	numbers, err := client.GetPhoneNumbers(ctx, skyetel.ListOptions{Limit: 50})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The client performs no retries; a failed call surfaces immediately and
// the caller owns retry policy.
package skyetel
