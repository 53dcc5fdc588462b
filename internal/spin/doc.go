// Package spin drives the Monad Spin cycle against a live browser page.
//
// The Controller runs the iteration loop: make the app ready, trigger a
// spin, classify the result overlay, confirm the wallet transaction on a
// win, and pace iterations with a randomized delay. It consumes the
// browser.Surface abstraction, so the whole loop runs against mocks in
// tests.
//
// Classification (Classify, ParsePrize) and the tally are pure and are
// exported for use without a controller.
package spin
