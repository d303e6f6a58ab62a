// internal/component/flash.go
package component

// HitFlash marks a hostile that was just struck. While the timer runs the
// hostile renders bright and moves at the reduced speed.
type HitFlash struct {
	Remaining float64
}
