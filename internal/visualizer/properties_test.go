package visualizer_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dsaviz/internal/anim"
	"github.com/san-kum/dsaviz/internal/dsa"
	"github.com/san-kum/dsaviz/internal/oplog"
	"github.com/san-kum/dsaviz/internal/visualizer"
)

var fixed = time.Date(2024, 5, 4, 13, 37, 0, 0, time.UTC)

func newVisualizer(mode dsa.Mode) (*visualizer.Visualizer, *oplog.Log, *anim.ManualClock) {
	log := oplog.New()
	clock := anim.NewManualClock()
	v := visualizer.New(log,
		visualizer.WithMode(mode),
		visualizer.WithClock(func() time.Time { return fixed }),
		visualizer.WithAnimation(clock, 0, 0),
	)
	return v, log, clock
}

func messages(l *oplog.Log) []string {
	entries := l.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

var _ = Describe("Visualizer", func() {
	DescribeTable("clear then traverse reports empty and draws nothing",
		func(mode dsa.Mode, want string) {
			v, log, _ := newVisualizer(mode)
			v.Insert(1, visualizer.NoPosition)
			v.Insert(2, visualizer.NoPosition)
			v.Clear()

			_, err := v.Traverse()
			Expect(err).To(MatchError(dsa.ErrEmpty))
			Expect(messages(log)).To(HaveLen(4))
			Expect(messages(log)[2]).To(Equal(mode.String() + " cleared"))
			Expect(messages(log)[3]).To(Equal(want))
			Expect(v.Model().Empty()).To(BeTrue())
		},
		Entry("linked list", dsa.LinkedList, "List is empty"),
		Entry("stack", dsa.Stack, "Stack is empty"),
		Entry("queue", dsa.Queue, "Queue is empty"),
	)

	Context("in stack mode", func() {
		It("round-trips a push and a pop", func() {
			v, _, _ := newVisualizer(dsa.Stack)
			for _, x := range []int{4, 9, 1} {
				v.Insert(x, visualizer.NoPosition)
			}
			before := v.Sequence()

			v.Insert(42, 0)
			got, err := v.Delete(visualizer.NoPosition)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(42))
			Expect(v.Sequence()).To(Equal(before))
		})

		It("pops in LIFO order", func() {
			v, log, _ := newVisualizer(dsa.Stack)
			v.Insert(1, visualizer.NoPosition)
			v.Insert(2, visualizer.NoPosition)
			v.Insert(3, visualizer.NoPosition)
			_, _ = v.Delete(visualizer.NoPosition)
			_, _ = v.Delete(visualizer.NoPosition)

			Expect(v.Sequence()).To(Equal(dsa.Sequence{1}))
			msgs := messages(log)
			Expect(msgs[len(msgs)-2]).To(HavePrefix("Popped 3"))
			Expect(msgs[len(msgs)-1]).To(HavePrefix("Popped 2"))
		})

		It("lists top to bottom when traversing", func() {
			v, log, clock := newVisualizer(dsa.Stack)
			v.Insert(1, visualizer.NoPosition)
			v.Insert(2, visualizer.NoPosition)
			tok, err := v.Traverse()
			Expect(err).NotTo(HaveOccurred())
			Expect(tok).To(BeNil())
			Expect(messages(log)).To(ContainElement("Stack (top to bottom): 2 | 1"))
			Expect(clock.Pending()).To(BeZero())
		})
	})

	Context("in queue mode", func() {
		It("preserves FIFO order across interleaved operations", func() {
			v, _, _ := newVisualizer(dsa.Queue)
			var expected []int
			var dequeued []int
			ops := []int{1, 2, -1, 3, -1, 4, 5, -1, -1, 6, -1}
			for _, op := range ops {
				if op < 0 {
					got, err := v.Delete(visualizer.NoPosition)
					Expect(err).NotTo(HaveOccurred())
					dequeued = append(dequeued, got)
					continue
				}
				expected = append(expected, op)
				v.Insert(op, visualizer.NoPosition)
			}
			Expect(dequeued).To(Equal(expected[:len(dequeued)]))
			Expect(v.Sequence()).To(Equal(dsa.Sequence(expected[len(dequeued):])))
		})

		It("ignores the position on insert", func() {
			v, log, _ := newVisualizer(dsa.Queue)
			v.Insert(1, visualizer.NoPosition)
			v.Insert(2, 0)
			Expect(v.Sequence()).To(Equal(dsa.Sequence{1, 2}))
			Expect(messages(log)).To(Equal([]string{"Enqueued 1", "Enqueued 2"}))
		})
	})

	Context("in linked-list mode", func() {
		It("restores the sequence after insert(v, i) then delete(i)", func() {
			base := dsa.Sequence{10, 20, 30, 40}
			for i := 0; i <= len(base); i++ {
				v, _, _ := newVisualizer(dsa.LinkedList)
				for _, x := range base {
					v.Insert(x, visualizer.NoPosition)
				}
				v.Insert(99, i)
				got, err := v.Delete(i)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(99), "index %d", i)
				Expect(v.Sequence()).To(Equal(base), "index %d", i)
			}
		})

		It("clamps an out-of-range delete to the tail", func() {
			v, log, _ := newVisualizer(dsa.LinkedList)
			v.Insert(1, visualizer.NoPosition)
			v.Insert(2, visualizer.NoPosition)
			v.Insert(3, visualizer.NoPosition)
			got, err := v.Delete(17)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(3))
			Expect(v.Sequence()).To(Equal(dsa.Sequence{1, 2}))
			Expect(messages(log)).To(ContainElement("Deleted 3 from position 2"))
		})

		It("inserts at a middle position", func() {
			v, log, _ := newVisualizer(dsa.LinkedList)
			v.Insert(5, visualizer.NoPosition)
			v.Insert(10, visualizer.NoPosition)
			v.Insert(7, 1)
			Expect(v.Sequence()).To(Equal(dsa.Sequence{5, 7, 10}))
			Expect(messages(log)).To(Equal([]string{
				"Inserted 5 at end",
				"Inserted 10 at end",
				"Inserted 7 at position 1",
			}))
		})

		It("highlights each node during traversal", func() {
			v, log, clock := newVisualizer(dsa.LinkedList)
			v.Insert(5, visualizer.NoPosition)
			v.Insert(7, visualizer.NoPosition)

			tok, err := v.Traverse()
			Expect(err).NotTo(HaveOccurred())
			Expect(tok).NotTo(BeNil())
			Expect(messages(log)).To(ContainElement("Traversing: 5 -> 7"))

			clock.Advance(0)
			Expect(v.Highlighted()).To(Equal([]string{"node-0"}))
			clock.Advance(600 * time.Millisecond)
			Expect(v.Highlighted()).To(Equal([]string{"node-0", "node-1"}))
			clock.Advance(2 * time.Second)
			Expect(v.Highlighted()).To(BeEmpty())
			Eventually(tok.Done()).Should(BeClosed())
		})

		It("supersedes an overlapping traversal", func() {
			v, _, clock := newVisualizer(dsa.LinkedList)
			for _, x := range []int{1, 2, 3} {
				v.Insert(x, visualizer.NoPosition)
			}
			first, _ := v.Traverse()
			clock.Advance(700 * time.Millisecond)
			second, _ := v.Traverse()

			Expect(first.Done()).To(BeClosed())
			Expect(v.Highlighted()).To(BeEmpty())
			clock.Advance(0)
			Expect(v.Highlighted()).To(Equal([]string{"node-0"}))
			Expect(second.Done()).NotTo(BeClosed())
		})

		It("cancels the highlight on mutation", func() {
			v, _, clock := newVisualizer(dsa.LinkedList)
			v.Insert(1, visualizer.NoPosition)
			tok, _ := v.Traverse()
			clock.Advance(0)
			Expect(v.Animating()).To(BeTrue())

			v.Insert(2, visualizer.NoPosition)
			Expect(tok.Done()).To(BeClosed())
			Expect(v.Highlighted()).To(BeEmpty())
		})
	})

	It("discards the sequence when switching mode", func() {
		v, log, _ := newVisualizer(dsa.LinkedList)
		v.Insert(3, visualizer.NoPosition)
		v.SetMode(dsa.Queue)

		Expect(v.Mode()).To(Equal(dsa.Queue))
		Expect(v.Sequence()).To(BeEmpty())
		Expect(v.Model().Empty()).To(BeTrue())
		Expect(messages(log)).To(HaveLen(2))
		Expect(messages(log)[1]).To(Equal("queue cleared"))
	})

	It("stamps every log line with the wall clock", func() {
		v, log, _ := newVisualizer(dsa.Stack)
		v.Insert(8, visualizer.NoPosition)
		line := log.Lines()[0]
		Expect(line).To(Equal("[13:37:00] Pushed 8 onto stack"))
		Expect(strings.Count(line, "[")).To(Equal(1))
	})
})
