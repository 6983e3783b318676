package composition

import (
	"fmt"
	"math"
)

// Element holds the per-element properties the weighted featurizer can
// aggregate. Electronegativity is on the Pauling scale, covalent radius in
// picometers, melting point in kelvin. NaN marks a property that is not
// defined for the element.
type Element struct {
	AtomicNumber      float64
	AtomicWeight      float64
	Electronegativity float64
	CovalentRadius    float64
	MeltingPoint      float64
}

// Property names accepted by Weighted.
const (
	PropAtomicNumber      = "atomic_number"
	PropAtomicWeight      = "atomic_weight"
	PropElectronegativity = "electronegativity"
	PropCovalentRadius    = "covalent_radius"
	PropMeltingPoint      = "melting_point"
)

// PropertyNames lists all supported properties in label order.
func PropertyNames() []string {
	return []string{
		PropAtomicNumber,
		PropAtomicWeight,
		PropElectronegativity,
		PropCovalentRadius,
		PropMeltingPoint,
	}
}

// Property returns the named property of an element symbol.
func Property(symbol, name string) (float64, error) {
	el, ok := elements[symbol]
	if !ok {
		return 0, fmt.Errorf("composition: unknown element %q", symbol)
	}
	switch name {
	case PropAtomicNumber:
		return el.AtomicNumber, nil
	case PropAtomicWeight:
		return el.AtomicWeight, nil
	case PropElectronegativity:
		return el.Electronegativity, nil
	case PropCovalentRadius:
		return el.CovalentRadius, nil
	case PropMeltingPoint:
		return el.MeltingPoint, nil
	}
	return 0, fmt.Errorf("composition: unknown property %q", name)
}

var nan = math.NaN()

var elements = map[string]Element{
	"H":  {1, 1.008, 2.20, 31, 13.99},
	"He": {2, 4.0026, nan, 28, 0.95},
	"Li": {3, 6.94, 0.98, 128, 453.65},
	"Be": {4, 9.0122, 1.57, 96, 1560},
	"B":  {5, 10.81, 2.04, 84, 2349},
	"C":  {6, 12.011, 2.55, 76, 3823},
	"N":  {7, 14.007, 3.04, 71, 63.15},
	"O":  {8, 15.999, 3.44, 66, 54.36},
	"F":  {9, 18.998, 3.98, 57, 53.48},
	"Ne": {10, 20.180, nan, 58, 24.56},
	"Na": {11, 22.990, 0.93, 166, 370.94},
	"Mg": {12, 24.305, 1.31, 141, 923},
	"Al": {13, 26.982, 1.61, 121, 933.47},
	"Si": {14, 28.085, 1.90, 111, 1687},
	"P":  {15, 30.974, 2.19, 107, 317.3},
	"S":  {16, 32.06, 2.58, 105, 388.36},
	"Cl": {17, 35.45, 3.16, 102, 171.6},
	"Ar": {18, 39.948, nan, 106, 83.81},
	"K":  {19, 39.098, 0.82, 203, 336.7},
	"Ca": {20, 40.078, 1.00, 176, 1115},
	"Sc": {21, 44.956, 1.36, 170, 1814},
	"Ti": {22, 47.867, 1.54, 160, 1941},
	"V":  {23, 50.942, 1.63, 153, 2183},
	"Cr": {24, 51.996, 1.66, 139, 2180},
	"Mn": {25, 54.938, 1.55, 139, 1519},
	"Fe": {26, 55.845, 1.83, 132, 1811},
	"Co": {27, 58.933, 1.88, 126, 1768},
	"Ni": {28, 58.693, 1.91, 124, 1728},
	"Cu": {29, 63.546, 1.90, 132, 1357.77},
	"Zn": {30, 65.38, 1.65, 122, 692.68},
	"Ga": {31, 69.723, 1.81, 122, 302.91},
	"Ge": {32, 72.630, 2.01, 120, 1211.4},
	"As": {33, 74.922, 2.18, 119, 1090},
	"Se": {34, 78.971, 2.55, 120, 494},
	"Br": {35, 79.904, 2.96, 120, 265.8},
	"Kr": {36, 83.798, 3.00, 116, 115.78},
	"Rb": {37, 85.468, 0.82, 220, 312.45},
	"Sr": {38, 87.62, 0.95, 195, 1050},
	"Y":  {39, 88.906, 1.22, 190, 1799},
	"Zr": {40, 91.224, 1.33, 175, 2128},
	"Nb": {41, 92.906, 1.60, 164, 2750},
	"Mo": {42, 95.95, 2.16, 154, 2896},
	"Ru": {44, 101.07, 2.20, 146, 2607},
	"Rh": {45, 102.91, 2.28, 142, 2237},
	"Pd": {46, 106.42, 2.20, 139, 1828.05},
	"Ag": {47, 107.87, 1.93, 145, 1234.93},
	"Cd": {48, 112.41, 1.69, 144, 594.22},
	"In": {49, 114.82, 1.78, 142, 429.75},
	"Sn": {50, 118.71, 1.96, 139, 505.08},
	"Sb": {51, 121.76, 2.05, 139, 903.78},
	"Te": {52, 127.60, 2.10, 138, 722.66},
	"I":  {53, 126.90, 2.66, 139, 386.85},
	"Cs": {55, 132.91, 0.79, 244, 301.7},
	"Ba": {56, 137.33, 0.89, 215, 1000},
	"La": {57, 138.91, 1.10, 207, 1193},
	"Ce": {58, 140.12, 1.12, 204, 1068},
	"Hf": {72, 178.49, 1.30, 175, 2506},
	"Ta": {73, 180.95, 1.50, 170, 3290},
	"W":  {74, 183.84, 2.36, 162, 3695},
	"Re": {75, 186.21, 1.90, 151, 3459},
	"Os": {76, 190.23, 2.20, 144, 3306},
	"Ir": {77, 192.22, 2.20, 141, 2719},
	"Pt": {78, 195.08, 2.28, 136, 2041.4},
	"Au": {79, 196.97, 2.54, 136, 1337.33},
	"Hg": {80, 200.59, 2.00, 132, 234.32},
	"Tl": {81, 204.38, 1.62, 145, 577},
	"Pb": {82, 207.2, 2.33, 146, 600.61},
	"Bi": {83, 208.98, 2.02, 148, 544.55},
}
