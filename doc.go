// Package collate provides single-pass positional extraction over sequences.
//
// A Plan declares, ahead of time, which positions of a sequence to read and
// how to combine the extracted values into one structured result. However many
// samples a Plan was built from, and in whatever order they were declared,
// running it traverses the input exactly once, stopping at the highest
// position the Plan requires.
//
// Plans are immutable values. Opening a Plan allocates fresh per-run state,
// so the same Plan can be run any number of times, including concurrently.
//
// # Building Plans
//
// Sample and BulkSample are the only ways to request input positions:
//
//	price := collate.Sample(3, parsePrice)            // Plan[string, Price]
//	tags := collate.BulkSample([]int{0, 1, 2}, strings.ToUpper)
//
// Plans compose positionally. Zip merges two plans into one that extracts
// both requests in the same pass; Map post-processes a result; Pure requests
// nothing:
//
//	quote := collate.Zip(price, tags, makeQuote)      // Plan[string, Quote]
//
// There is deliberately no data-dependent composition: a Plan's positions can
// never depend on values read during the same pass. That restriction is what
// makes the single-pass guarantee possible.
//
// # Running Plans
//
//	q, err := collate.Run(quote, record)
//
// Run scans the input once, visiting only the prefix the Plan needs. For
// chunked input, open the Plan and feed it piece by piece:
//
//	x, err := quote.Open()
//	for _, chunk := range chunks {
//	    x.Feed(chunk)
//	    if x.Done() {
//	        break
//	    }
//	}
//	q, err := x.Result()
//
// Reading a result whose position was never fed reports ErrUnfulfilled; a
// short input is never an error at feed time.
//
// Containers other than slices drive plans through the Sequence interface
// (see RunSeq) or through the adapters in the source package.
//
// This package has no dependencies outside the standard library. Logging,
// instrumentation, and declarative plan files live in the surrounding
// packages.
package collate
