// Package viz replays a computed path in the terminal: the rover advances
// one lane-step per tick, soil turns from unsown to sown under SOW segments,
// and a progress bar tracks cumulative sown distance.
//
// The view consumes the path strictly in order and never mutates it; the
// core makes no assumption about the rendering cadence, which is controlled
// here by Options.FPS.
package viz
