package fractal

import (
	"flag"
	"strconv"
	"strings"
)

// RegisterFlags binds the fields of p to flags on fs. The current values of
// p are the flag defaults, so call it on DefaultParams.
func (p *Params) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&p.Width, "width", p.Width, "Width of the image in pixels.")
	fs.IntVar(&p.Height, "height", p.Height, "Height of the image in pixels.")
	fs.IntVar(&p.MaxIter, "iter", p.MaxIter,
		"Maximum number of iterations before a point is considered bounded.")
	fs.Float64Var(&p.EscapeRadius, "radius", p.EscapeRadius,
		"Magnitude beyond which a point has escaped.")
	fs.Var((*regionValue)(&p.Region), "region",
		"Plane window: a name ("+strings.Join(RegionNames(), ", ")+") or xmin,xmax,ymin,ymax.")
	fs.Var((*complexValue)(&p.C), "c", "Julia constant, e.g. -0.7+0.27015i.")
}

type regionValue Region

func (r *regionValue) String() string { return Region(*r).String() }

func (r *regionValue) Set(s string) error {
	region, err := ParseRegion(s)
	if err != nil {
		return err
	}
	*r = regionValue(region)
	return nil
}

type complexValue complex128

func (c *complexValue) String() string {
	return strconv.FormatComplex(complex128(*c), 'g', -1, 128)
}

func (c *complexValue) Set(s string) error {
	v, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return err
	}
	*c = complexValue(v)
	return nil
}
