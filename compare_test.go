package forwardlist_test

import (
	"testing"

	"github.com/burakshaevn/forwardlist"
	. "github.com/onsi/gomega"
)

func TestEqual(t *testing.T) {
	t.Run("reflexive", func(t *testing.T) {
		l := forwardlist.New(1, 2, 3)

		g := NewWithT(t)

		g.Expect(forwardlist.Equal(l, l)).To(BeTrue())
	})

	t.Run("symmetric", func(t *testing.T) {
		a := forwardlist.New("one", "two")
		b := forwardlist.New("one", "two")

		g := NewWithT(t)

		g.Expect(forwardlist.Equal(a, b)).To(BeTrue())
		g.Expect(forwardlist.Equal(b, a)).To(BeTrue())
	})

	t.Run("transitive", func(t *testing.T) {
		a := forwardlist.New(1, 2)
		b := forwardlist.New(1, 2)
		c := forwardlist.New(1, 2)

		g := NewWithT(t)

		g.Expect(forwardlist.Equal(a, b)).To(BeTrue())
		g.Expect(forwardlist.Equal(b, c)).To(BeTrue())
		g.Expect(forwardlist.Equal(a, c)).To(BeTrue())
	})

	t.Run("different lengths", func(t *testing.T) {
		a := forwardlist.New(1, 2, 3)
		b := forwardlist.New(1, 2)

		g := NewWithT(t)

		g.Expect(forwardlist.Equal(a, b)).To(BeFalse())
	})

	t.Run("different elements", func(t *testing.T) {
		a := forwardlist.New(1, 2, 3)
		b := forwardlist.New(1, 9, 3)

		g := NewWithT(t)

		g.Expect(forwardlist.Equal(a, b)).To(BeFalse())
	})

	t.Run("empty lists", func(t *testing.T) {
		var a, b forwardlist.List[int]

		g := NewWithT(t)

		g.Expect(forwardlist.Equal(&a, &b)).To(BeTrue())
	})
}

func TestCompare(t *testing.T) {
	t.Run("matching prefix is less", func(t *testing.T) {
		a := forwardlist.New(1, 2)
		b := forwardlist.New(1, 2, 3)

		g := NewWithT(t)

		g.Expect(forwardlist.Compare(a, b)).To(Equal(-1))
		g.Expect(forwardlist.Compare(b, a)).To(Equal(1))
	})

	t.Run("first differing element decides", func(t *testing.T) {
		a := forwardlist.New(1, 2, 3)
		b := forwardlist.New(2)
		c := forwardlist.New(1, 2, 9)
		d := forwardlist.New(1, 3, 0)

		g := NewWithT(t)

		g.Expect(forwardlist.Compare(a, b)).To(Equal(-1))
		g.Expect(forwardlist.Compare(c, d)).To(Equal(-1))
	})

	t.Run("equal lists", func(t *testing.T) {
		a := forwardlist.New("a", "b")
		b := forwardlist.New("a", "b")

		g := NewWithT(t)

		g.Expect(forwardlist.Compare(a, b)).To(Equal(0))
	})

	t.Run("empty list is less than any non-empty list", func(t *testing.T) {
		var a forwardlist.List[int]
		b := forwardlist.New(0)

		g := NewWithT(t)

		g.Expect(forwardlist.Compare(&a, b)).To(Equal(-1))
	})
}

func TestOrderingPredicates(t *testing.T) {
	a := forwardlist.New(1, 2)
	b := forwardlist.New(1, 2, 3)
	eq := forwardlist.New(1, 2)

	g := NewWithT(t)

	g.Expect(forwardlist.Less(a, b)).To(BeTrue())
	g.Expect(forwardlist.Less(b, a)).To(BeFalse())
	g.Expect(forwardlist.Less(a, eq)).To(BeFalse())

	g.Expect(forwardlist.LessOrEqual(a, b)).To(BeTrue())
	g.Expect(forwardlist.LessOrEqual(a, eq)).To(BeTrue())
	g.Expect(forwardlist.LessOrEqual(b, a)).To(BeFalse())

	g.Expect(forwardlist.Greater(b, a)).To(BeTrue())
	g.Expect(forwardlist.Greater(a, b)).To(BeFalse())
	g.Expect(forwardlist.Greater(a, eq)).To(BeFalse())

	g.Expect(forwardlist.GreaterOrEqual(b, a)).To(BeTrue())
	g.Expect(forwardlist.GreaterOrEqual(a, eq)).To(BeTrue())
	g.Expect(forwardlist.GreaterOrEqual(a, b)).To(BeFalse())
}
