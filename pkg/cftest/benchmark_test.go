package cftest_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/cftest/pkg/cftest"
)

func BenchmarkCheck_ManyTests(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(strconv.Itoa(i) + " 1\n\n" + strconv.Itoa(i+1))
	}
	fixture := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cftest.Check(context.Background(), fixture, sum); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheck_Tolerance(b *testing.B) {
	fixture := "precision-digits=6\n\n1\n\n0.3333333"
	third := func(io cftest.IO) error {
		io.Print("0.33333331")
		return nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cftest.Check(context.Background(), fixture, third); err != nil {
			b.Fatal(err)
		}
	}
}
