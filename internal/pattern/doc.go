// Package pattern implements the MPN matching-rule registry.
//
// The registry has a strict two-phase lifecycle. During the build phase a Builder
// collects compiled rules from every rule provider:
//
//	b := pattern.NewBuilder()
//	if err := b.Register(types.TypeResistorYageoChip, "yageo", `^RC\d{4}`); err != nil {
//	    log.Printf("rejected pattern: %v", err)
//	}
//	reg := b.Freeze()
//
// Freeze returns an immutable Registry safe for unlimited concurrent read access
// without locks. No registration is possible after the freeze.
//
// # Ownership Isolation
//
// Every rule is registered under a RuleOwnerID namespace. MatchesAny consults all
// owners' rules; MatchesOwner consults only one owner's. A provider deciding
// "is this MPN mine" must call MatchesOwner for its own ID, never MatchesAny:
// multiple providers may register patterns for the same generic type, and another
// provider's pattern happening to match must not override this provider's own
// negative judgment.
//
// Malformed pattern sources are rejected at registration time, not at match time.
package pattern
