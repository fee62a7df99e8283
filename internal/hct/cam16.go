package hct

import "math"

var xyzToCam16RGB = [3][3]float64{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

var cam16RGBToXYZ = [3][3]float64{
	{1.8620678, -1.0112547, 0.14918678},
	{0.38752654, 0.62144744, -0.00897398},
	{-0.01584150, -0.03412294, 1.0499644},
}

// Cam16 is a colour appearance model. Colours are not just defined by their hex
// code, but rather a hex code and viewing conditions.
//
// Hue, Chroma, J (lightness) and the UCS coordinates are what HCT needs; Q, M
// and S are kept for completeness.
type Cam16 struct {
	Hue    float64
	Chroma float64
	J      float64
	Q      float64
	M      float64
	S      float64
	Jstar  float64
	Astar  float64
	Bstar  float64
}

// Distance is the CAM16-UCS colour difference between two colours.
func (c Cam16) Distance(other Cam16) float64 {
	dJ := c.Jstar - other.Jstar
	dA := c.Astar - other.Astar
	dB := c.Bstar - other.Bstar
	dEPrime := math.Sqrt(dJ*dJ + dA*dA + dB*dB)
	return 1.41 * math.Pow(dEPrime, 0.63)
}

// Cam16FromArgb creates a Cam16 colour assuming default viewing conditions.
func Cam16FromArgb(argb uint32) Cam16 {
	return Cam16FromArgbInViewingConditions(argb, DefaultViewingConditions)
}

// Cam16FromArgbInViewingConditions creates a Cam16 colour in the given viewing conditions.
func Cam16FromArgbInViewingConditions(argb uint32, vc ViewingConditions) Cam16 {
	xyz := XYZFromArgb(argb)
	return Cam16FromXYZInViewingConditions(xyz[0], xyz[1], xyz[2], vc)
}

// Cam16FromXYZInViewingConditions creates a Cam16 colour from XYZ coordinates.
func Cam16FromXYZInViewingConditions(x, y, z float64, vc ViewingConditions) Cam16 {
	rgbT := matrixMultiply([3]float64{x, y, z}, xyzToCam16RGB)

	var rgbA [3]float64
	for i := range rgbA {
		d := vc.RgbD[i] * rgbT[i]
		af := math.Pow(vc.Fl*math.Abs(d)/100, 0.42)
		rgbA[i] = Signum(d) * 400 * af / (af + 27.13)
	}
	rA, gA, bA := rgbA[0], rgbA[1], rgbA[2]

	// redness-greenness
	a := (11*rA + -12*gA + bA) / 11
	// yellowness-blueness
	b := (rA + gA - 2*bA) / 9

	// auxiliary components
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	atanDegrees := math.Atan2(b, a) * 180 / math.Pi
	hue := atanDegrees
	if hue < 0 {
		hue += 360
	} else if hue >= 360 {
		hue -= 360
	}
	hueRadians := hue * math.Pi / 180

	ac := p2 * vc.Nbb
	j := 100 * math.Pow(ac/vc.Aw, vc.C*vc.Z)
	q := 4 / vc.C * math.Sqrt(j/100) * (vc.Aw + 4) * vc.FlRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime = hue + 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000.0 / 13.0 * eHue * vc.Nc * vc.Ncb
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(1.64-math.Pow(0.29, vc.N), 0.73) * math.Pow(t, 0.9)

	chroma := alpha * math.Sqrt(j/100)
	m := chroma * vc.FlRoot
	s := 50 * math.Sqrt(alpha*vc.C/(vc.Aw+4))

	jstar := (1 + 100*0.007) * j / (1 + 0.007*j)
	mstar := 1 / 0.0228 * math.Log1p(0.0228*m)

	return Cam16{
		Hue:    hue,
		Chroma: chroma,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		Jstar:  jstar,
		Astar:  mstar * math.Cos(hueRadians),
		Bstar:  mstar * math.Sin(hueRadians),
	}
}

// Cam16FromJch creates a Cam16 colour from lightness, chroma and hue in default
// viewing conditions.
func Cam16FromJch(j, c, h float64) Cam16 {
	return Cam16FromJchInViewingConditions(j, c, h, DefaultViewingConditions)
}

// Cam16FromJchInViewingConditions creates a Cam16 colour from lightness, chroma and hue.
func Cam16FromJchInViewingConditions(j, c, h float64, vc ViewingConditions) Cam16 {
	q := 4 / vc.C * math.Sqrt(j/100) * (vc.Aw + 4) * vc.FlRoot
	m := c * vc.FlRoot
	alpha := c / math.Sqrt(j/100)
	s := 50 * math.Sqrt(alpha*vc.C/(vc.Aw+4))

	hueRadians := h * math.Pi / 180
	jstar := (1 + 100*0.007) * j / (1 + 0.007*j)
	mstar := 1 / 0.0228 * math.Log1p(0.0228*m)

	return Cam16{
		Hue:    h,
		Chroma: c,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		Jstar:  jstar,
		Astar:  mstar * math.Cos(hueRadians),
		Bstar:  mstar * math.Sin(hueRadians),
	}
}

// Cam16FromUcs creates a Cam16 colour from CAM16-UCS coordinates in default
// viewing conditions.
func Cam16FromUcs(jstar, astar, bstar float64) Cam16 {
	return Cam16FromUcsInViewingConditions(jstar, astar, bstar, DefaultViewingConditions)
}

// Cam16FromUcsInViewingConditions creates a Cam16 colour from CAM16-UCS coordinates.
func Cam16FromUcsInViewingConditions(jstar, astar, bstar float64, vc ViewingConditions) Cam16 {
	m := math.Hypot(astar, bstar)
	bigM := math.Expm1(m*0.0228) / 0.0228
	c := bigM / vc.FlRoot
	h := math.Atan2(bstar, astar) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	j := jstar / (1 - (jstar-100)*0.007)
	return Cam16FromJchInViewingConditions(j, c, h, vc)
}

// ToArgb converts the colour to ARGB assuming default viewing conditions.
func (c Cam16) ToArgb() uint32 {
	return c.Viewed(DefaultViewingConditions)
}

// Viewed converts the colour to ARGB as seen in the given viewing conditions.
func (c Cam16) Viewed(vc ViewingConditions) uint32 {
	xyz := c.XYZInViewingConditions(vc)
	return ArgbFromXYZ(xyz[0], xyz[1], xyz[2])
}

// XYZInViewingConditions converts the colour to XYZ as seen in the given
// viewing conditions.
func (c Cam16) XYZInViewingConditions(vc ViewingConditions) [3]float64 {
	alpha := 0.0
	if c.Chroma != 0 && c.J != 0 {
		alpha = c.Chroma / math.Sqrt(c.J/100)
	}

	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vc.N), 0.73), 1/0.9)
	hRad := c.Hue * math.Pi / 180

	eHue := 0.25 * (math.Cos(hRad+2) + 3.8)
	ac := vc.Aw * math.Pow(c.J/100, 1/vc.C/vc.Z)
	p1 := eHue * (50000.0 / 13.0) * vc.Nc * vc.Ncb
	p2 := ac / vc.Nbb

	hSin := math.Sin(hRad)
	hCos := math.Cos(hRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	var rgbF [3]float64
	for i, adapted := range [3]float64{rA, gA, bA} {
		base := math.Max(0, 27.13*math.Abs(adapted)/(400-math.Abs(adapted)))
		rgbF[i] = Signum(adapted) * (100 / vc.Fl) * math.Pow(base, 1/0.42) / vc.RgbD[i]
	}

	return matrixMultiply(rgbF, cam16RGBToXYZ)
}
