package subdiag_test

import (
	"context"
	"fmt"
	"log"

	"github.com/dwhensley/subdiag"
	"github.com/dwhensley/subdiag/blobstore"
	"github.com/dwhensley/subdiag/diagnostic"
)

var readingsExample = []string{
	"00100", "11110", "10110", "10111", "10101", "01111",
	"00111", "11100", "10000", "11001", "00010", "01010",
}

func ExampleAnalyzer_Analyze() {
	a := subdiag.New()

	report, err := a.Analyze(context.Background(), readingsExample)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("gamma=%d epsilon=%d power=%d\n", report.Gamma, report.Epsilon, report.PowerConsumption)
	fmt.Printf("oxygen=%d co2=%d life support=%d\n", report.OxygenGenerator, report.CO2Scrubber, report.LifeSupport)
	// Output:
	// gamma=22 epsilon=9 power=198
	// oxygen=23 co2=10 life support=230
}

func ExampleAnalyzer_Explain() {
	a := subdiag.New()

	exp, err := a.Explain(context.Background(), readingsExample, diagnostic.CO2Scrubber)
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range exp.Steps {
		fmt.Printf("column %d: %d/%d ones, keep %d -> %v\n", s.Column, s.Ones, s.Rows, s.Kept, s.Survivors.ToArray())
	}
	fmt.Println("rating:", exp.Value)
	// Output:
	// column 0: 7/12 ones, keep 0 -> [0 5 6 10 11]
	// column 1: 2/5 ones, keep 1 -> [5 11]
	// column 2: 1/2 ones, keep 0 -> [11]
	// rating: 10
}

func ExampleAnalyzer_AnalyzePrefix() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	_ = store.Put(ctx, "sub/a.txt", []byte("00100\n11110\n10110\n10111\n10101\n01111\n00111\n11100\n10000\n11001\n00010\n01010\n"))
	_ = store.Put(ctx, "sub/b.txt", []byte("110\n011\n"))

	results, err := subdiag.New(subdiag.WithMaxWorkers(2)).AnalyzePrefix(ctx, store, "sub/")
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Println(r.Source, "error")
			continue
		}
		fmt.Println(r.Source, r.Report.PowerConsumption, r.Report.LifeSupport)
	}
	// Output:
	// sub/a.txt 198 230
	// sub/b.txt 10 18
}
