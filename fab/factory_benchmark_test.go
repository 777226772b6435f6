package fab_test

import (
	"testing"

	"github.com/fabrikgo/fabrik/fab"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

func newBenchTree(b *testing.B) fab.Getter {
	b.Helper()

	sum := fab.Func2(func(a, x int) int { return a + x })
	twice := fab.Func1(func(v int) int { return v * 2 })

	inner, err := sum.New(fab.Arg(3), fab.Arg(2))
	if err != nil {
		b.Fatal(err)
	}
	outer, err := twice.New(inner)
	if err != nil {
		b.Fatal(err)
	}
	return outer
}

/*
   Benchmarks
*/

func BenchmarkWire_TwoLevels(b *testing.B) {
	sum := fab.Func2(func(a, x int) int { return a + x })
	twice := fab.Func1(func(v int) int { return v * 2 })
	three, two := fab.Arg(3), fab.Arg(2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inner, _ := sum.New(three, two)
		_, _ = twice.New(inner)
	}
}

func BenchmarkWire_FailedArity(b *testing.B) {
	sum := fab.Func2(func(a, x int) int { return a + x })
	three := fab.Arg(3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sum.New(three)
	}
}

func BenchmarkInvoke_TwoLevels(b *testing.B) {
	g := newBenchTree(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Invoke()
	}
}

func BenchmarkTake_Typed(b *testing.B) {
	typed, ok := fab.AsGetterOf[int](newBenchTree(b))
	if !ok {
		b.Fatal("narrowing failed")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = typed.Take()
	}
}
