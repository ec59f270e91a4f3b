package anim

import cover "github.com/gogpu/gg-cover"

// Category says which effect a definition produces.
type Category uint8

const (
	// CategoryBlock animates a text layer as a whole.
	CategoryBlock Category = iota
	// CategoryLetters animates each visible letter of a text layer.
	CategoryLetters
	// CategoryMedia animates a media or overlay layer.
	CategoryMedia
)

var categoryNames = [...]string{
	CategoryBlock:   "block",
	CategoryLetters: "letters",
	CategoryMedia:   "media",
}

// String returns the category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Family is an id namespace. Text and media ids are independent, so
// "fadeInOut" exists in both.
type Family uint8

const (
	FamilyText Family = iota
	FamilyMedia
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyText:
		return "text"
	case FamilyMedia:
		return "media"
	default:
		return "unknown"
	}
}

// Family returns the namespace definitions of this category live in.
func (c Category) Family() Family {
	if c == CategoryMedia {
		return FamilyMedia
	}
	return FamilyText
}

// Kind enumerates the built-in animations. KindCustom marks definitions
// added through Register.
type Kind uint8

const (
	KindCustom Kind = iota

	KindFadeInOut
	KindNeon
	KindSlideUp
	KindSlideRight
	KindSlideDown
	KindSlideLeft
	KindSmoothUp
	KindSmoothRight
	KindSmoothDown
	KindSmoothLeft

	KindLetterAppears
	KindLetterFade
	KindLetterFadeRandom
	KindLetterSlideFromTop
	KindLetterSlideFromRight
	KindLetterSlideFromBottom
	KindLetterSlideFromLeft
	KindLetterSmoothFromTop
	KindLetterSmoothFromRight
	KindLetterSmoothFromBottom
	KindLetterSmoothFromLeft

	KindMediaFadeInOut
	KindZoomInOpacity
	KindZoomOutOpacity
	KindZoomInOut
	KindZoomOutIn

	kindCount
)

var kindIDs = [kindCount]string{
	KindCustom:                 "custom",
	KindFadeInOut:              "fadeInOut",
	KindNeon:                   "neon",
	KindSlideUp:                "slideUp",
	KindSlideRight:             "slideRight",
	KindSlideDown:              "slideDown",
	KindSlideLeft:              "slideLeft",
	KindSmoothUp:               "smoothUp",
	KindSmoothRight:            "smoothRight",
	KindSmoothDown:             "smoothDown",
	KindSmoothLeft:             "smoothLeft",
	KindLetterAppears:          "letterAppearsAnimation",
	KindLetterFade:             "letterFadeAnimation",
	KindLetterFadeRandom:       "letterFadeAnimationRandom",
	KindLetterSlideFromTop:     "letterSlideFromTop",
	KindLetterSlideFromRight:   "letterSlideFromRight",
	KindLetterSlideFromBottom:  "letterSlideFromBottom",
	KindLetterSlideFromLeft:    "letterSlideFromLeft",
	KindLetterSmoothFromTop:    "letterSmoothFromTop",
	KindLetterSmoothFromRight:  "letterSmoothFromRight",
	KindLetterSmoothFromBottom: "letterSmoothFromBottom",
	KindLetterSmoothFromLeft:   "letterSmoothFromLeft",
	KindMediaFadeInOut:         "fadeInOut",
	KindZoomInOpacity:          "zoomInOpacity",
	KindZoomOutOpacity:         "zoomOutOpacity",
	KindZoomInOut:              "zoomInOut",
	KindZoomOutIn:              "zoomOutIn",
}

// String returns the catalog id of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindIDs[k]
	}
	return "unknown"
}

// Category returns the category of a built-in kind. KindCustom reports
// CategoryBlock; custom definitions carry their own category.
func (k Kind) Category() Category {
	switch {
	case k >= KindLetterAppears && k <= KindLetterSmoothFromLeft:
		return CategoryLetters
	case k >= KindMediaFadeInOut && k < kindCount:
		return CategoryMedia
	default:
		return CategoryBlock
	}
}

// Direction is where a sliding element enters from.
type Direction uint8

const (
	FromTop Direction = iota
	FromRight
	FromBottom
	FromLeft
)

// String returns the direction name as used in ids.
func (d Direction) String() string {
	switch d {
	case FromTop:
		return "fromTop"
	case FromRight:
		return "fromRight"
	case FromBottom:
		return "fromBottom"
	case FromLeft:
		return "fromLeft"
	default:
		return "unknown"
	}
}

// Delta returns the off-box displacement for a box of size w x h.
func (d Direction) Delta(w, h float64) cover.Point {
	switch d {
	case FromTop:
		return cover.Pt(0, -h)
	case FromRight:
		return cover.Pt(w, 0)
	case FromBottom:
		return cover.Pt(0, h)
	case FromLeft:
		return cover.Pt(-w, 0)
	default:
		return cover.Point{}
	}
}

// leadingFirst reports whether the first letters settle before the last
// ones. From the left and top the last letters settle first.
func (d Direction) leadingFirst() bool {
	return d == FromRight || d == FromBottom
}
