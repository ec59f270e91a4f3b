// Package keyframe turns cover animations into declarative keyframe arrays
// for platform animation primitives such as the Web Animations API.
//
// Laws are sampled over their progress domain and simplified, so every
// catalog entry, including custom ones, has a keyframe form. Visibility
// changes are located by bisection and emitted as two keyframes sharing an
// offset.
//
//	frames := keyframe.Block(anim.Text("fadeInOut"), ctx)
//	data, _ := json.Marshal(keyframe.Animation{Keyframes: frames, Timing: keyframe.DefaultTiming})
//
// [Sample] evaluates an array the way a browser would, which is how the
// package is tested against the canvas backend.
package keyframe
