package fxmath

// TransformCanonical returns the source to destination matrix in canonical
// coordinates. Read right to left, a point is moved to the center, scaled,
// skewed, rotated, translated, and moved back:
//
//	T(center) · T(translate) · R(-rads) · Skew · S(scale) · T(-center)
func TransformCanonical(translateX, translateY, scaleX, scaleY, skewX, skewY float64,
	skewOrderYX bool, rads, centerX, centerY float64) Matrix3x3 {
	return Translation(centerX, centerY).
		Multiply(Translation(translateX, translateY)).
		Multiply(Rotation(-rads)).
		Multiply(SkewXY(skewX, skewY, skewOrderYX)).
		Multiply(Scale(scaleX, scaleY)).
		Multiply(Translation(-centerX, -centerY))
}

// InverseTransformCanonical returns the destination to source matrix in
// canonical coordinates. It undoes each step of TransformCanonical in
// reverse order instead of inverting the product:
//
//	T(center) · S(1/scale) · Skew(-skew, !order) · R(rads) · T(-translate) · T(-center)
//
// A zero scale yields non-finite entries.
func InverseTransformCanonical(translateX, translateY, scaleX, scaleY, skewX, skewY float64,
	skewOrderYX bool, rads, centerX, centerY float64) Matrix3x3 {
	return Translation(centerX, centerY).
		Multiply(Scale(1/scaleX, 1/scaleY)).
		Multiply(SkewXY(-skewX, -skewY, !skewOrderYX)).
		Multiply(Rotation(rads)).
		Multiply(Translation(-translateX, -translateY)).
		Multiply(Translation(-centerX, -centerY))
}

// fieldScale is the vertical scale of a single video field.
func fieldScale(fielded bool) float64 {
	if fielded {
		return 0.5
	}
	return 1
}

// PixelToCanonical maps pixel coordinates to canonical coordinates:
//
//	X' = X * par / renderScaleX
//	Y' = Y / (renderScaleY * fieldScale)
//
// par is 1.09 for PAL, renderScale 0.5 for a half-resolution proxy, and
// fielded selects a 0.5 field scale in Y for an upper or lower field.
func PixelToCanonical(par, renderScaleX, renderScaleY float64, fielded bool) Matrix3x3 {
	return Scale(par/renderScaleX, 1/(renderScaleY*fieldScale(fielded)))
}

// CanonicalToPixel is the exact inverse of PixelToCanonical:
//
//	X' = X * renderScaleX / par
//	Y' = Y * renderScaleY * fieldScale
func CanonicalToPixel(par, renderScaleX, renderScaleY float64, fielded bool) Matrix3x3 {
	return Scale(renderScaleX/par, renderScaleY*fieldScale(fielded))
}

// TransformPixel returns the source to destination matrix in pixel
// coordinates: CanonicalToPixel · TransformCanonical · PixelToCanonical.
func TransformPixel(par, renderScaleX, renderScaleY float64, fielded bool,
	translateX, translateY, scaleX, scaleY, skewX, skewY float64,
	skewOrderYX bool, rads, centerX, centerY float64) Matrix3x3 {
	return CanonicalToPixel(par, renderScaleX, renderScaleY, fielded).
		Multiply(TransformCanonical(translateX, translateY, scaleX, scaleY, skewX, skewY, skewOrderYX, rads, centerX, centerY)).
		Multiply(PixelToCanonical(par, renderScaleX, renderScaleY, fielded))
}

// InverseTransformPixel returns the destination to source matrix in pixel
// coordinates.
func InverseTransformPixel(par, renderScaleX, renderScaleY float64, fielded bool,
	translateX, translateY, scaleX, scaleY, skewX, skewY float64,
	skewOrderYX bool, rads, centerX, centerY float64) Matrix3x3 {
	return CanonicalToPixel(par, renderScaleX, renderScaleY, fielded).
		Multiply(InverseTransformCanonical(translateX, translateY, scaleX, scaleY, skewX, skewY, skewOrderYX, rads, centerX, centerY)).
		Multiply(PixelToCanonical(par, renderScaleX, renderScaleY, fielded))
}

// Transform holds the user-facing parameters of a canonical transform.
// Rotate is in radians.
type Transform struct {
	TranslateX  float64 `toml:"translate_x"`
	TranslateY  float64 `toml:"translate_y"`
	ScaleX      float64 `toml:"scale_x"`
	ScaleY      float64 `toml:"scale_y"`
	SkewX       float64 `toml:"skew_x"`
	SkewY       float64 `toml:"skew_y"`
	SkewOrderYX bool    `toml:"skew_order_yx"`
	Rotate      float64 `toml:"rotate"`
	CenterX     float64 `toml:"center_x"`
	CenterY     float64 `toml:"center_y"`
}

// IdentityTransform returns parameters describing no transform.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Canonical returns the source to destination matrix.
func (t Transform) Canonical() Matrix3x3 {
	return TransformCanonical(t.TranslateX, t.TranslateY, t.ScaleX, t.ScaleY,
		t.SkewX, t.SkewY, t.SkewOrderYX, t.Rotate, t.CenterX, t.CenterY)
}

// InverseCanonical returns the destination to source matrix.
func (t Transform) InverseCanonical() Matrix3x3 {
	return InverseTransformCanonical(t.TranslateX, t.TranslateY, t.ScaleX, t.ScaleY,
		t.SkewX, t.SkewY, t.SkewOrderYX, t.Rotate, t.CenterX, t.CenterY)
}

// Matrices returns the (forward, inverse) canonical pair. When invert is
// set the pair is swapped, so the effect applies the opposite transform.
func (t Transform) Matrices(invert bool) (fwd, inv Matrix3x3) {
	fwd, inv = t.Canonical(), t.InverseCanonical()
	if invert {
		return inv, fwd
	}
	return fwd, inv
}

// Amount returns the parameters interpolated from the identity (amount 0)
// to t (amount 1). The center does not move. Directional blur samples the
// transform at several amounts between 0 and 1.
func (t Transform) Amount(amount float64) Transform {
	return Transform{
		TranslateX:  t.TranslateX * amount,
		TranslateY:  t.TranslateY * amount,
		ScaleX:      1 + (t.ScaleX-1)*amount,
		ScaleY:      1 + (t.ScaleY-1)*amount,
		SkewX:       t.SkewX * amount,
		SkewY:       t.SkewY * amount,
		SkewOrderYX: t.SkewOrderYX,
		Rotate:      t.Rotate * amount,
		CenterX:     t.CenterX,
		CenterY:     t.CenterY,
	}
}

// IsIdentity reports whether the parameters describe no transform.
func (t Transform) IsIdentity() bool {
	return t.TranslateX == 0 && t.TranslateY == 0 &&
		t.ScaleX == 1 && t.ScaleY == 1 &&
		t.SkewX == 0 && t.SkewY == 0 && t.Rotate == 0
}

// Pixel describes how an image maps to canonical coordinates.
type Pixel struct {
	PAR          float64 `toml:"par"`
	RenderScaleX float64 `toml:"render_scale_x"`
	RenderScaleY float64 `toml:"render_scale_y"`
	Fielded      bool    `toml:"fielded"`
}

// FullResolution returns square pixels at render scale 1.
func FullResolution() Pixel {
	return Pixel{PAR: 1, RenderScaleX: 1, RenderScaleY: 1}
}

// ToCanonical returns PixelToCanonical for px.
func (px Pixel) ToCanonical() Matrix3x3 {
	return PixelToCanonical(px.PAR, px.RenderScaleX, px.RenderScaleY, px.Fielded)
}

// ToPixel returns CanonicalToPixel for px.
func (px Pixel) ToPixel() Matrix3x3 {
	return CanonicalToPixel(px.PAR, px.RenderScaleX, px.RenderScaleY, px.Fielded)
}

// Forward returns the source to destination matrix of t in pixel coordinates.
func (px Pixel) Forward(t Transform) Matrix3x3 {
	return px.ToPixel().Multiply(t.Canonical()).Multiply(px.ToCanonical())
}

// Inverse returns the destination to source matrix of t in pixel coordinates.
func (px Pixel) Inverse(t Transform) Matrix3x3 {
	return px.ToPixel().Multiply(t.InverseCanonical()).Multiply(px.ToCanonical())
}

// RenderScale returns the render scale as a point.
func (px Pixel) RenderScale() PointD {
	return PointD{X: px.RenderScaleX, Y: px.RenderScaleY}
}
