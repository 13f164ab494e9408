package core

// resolveCombiner is the shared "at transaction_count == 0" decision shared
// by every Combiner_N's onZero handler (spec §4.12): emit End(v) when the
// span closed ready (an End was seen and no sibling Cancelled) and the
// combined LatestValue resolves to Some(v); otherwise emit Cancel. Factored
// once so the six concrete arities don't each re-derive the same lines.
func resolveCombiner[R any](self interface {
	PushTransaction(Transaction[R])
	LatestValue() LatestValue[R]
}, ready bool) {
	if ready {
		if v := self.LatestValue().Get(); v.IsSome() {
			self.PushTransaction(End(v.Unwrap()))
			return
		}
	}
	self.PushTransaction(Cancel[R]())
}
