// Package randhunt performs combinatorial research over random symbol
// strings: it generates fixed-shape shuffles of a small alphabet, tests
// each against a compiled pattern, and reports which strings matched and
// how often.
//
// # Quick Start
//
//	ctx := context.Background()
//	result, err := randhunt.Research().
//	    Tries(1_000_000).
//	    Times(2).
//	    Pattern(regexp.MustCompile("WKCN")).
//	    Workers(8).
//	    RunParallel(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Tries, result.HitsTotal)
//
// # Progress
//
// A progress handler receives per-worker idle/processing/done events,
// throttled to one processing event per worker per interval:
//
//	randhunt.Research().
//	    ...
//	    ProgressInterval(250 * time.Millisecond).
//	    ProgressHandler(func(ev randhunt.ProgressEvent) error {
//	        fmt.Printf("worker %d: %d/%d\n", ev.Worker, ev.Current, ev.Total)
//	        return nil
//	    }).
//	    RunParallel(ctx)
//
// # Cancellation
//
// Runs honor context cancellation cooperatively: workers stop at trial
// granularity and the partial result is returned with a nil error. Compare
// Result.Tries against the configured value to tell a completed run from a
// cancelled one.
package randhunt
