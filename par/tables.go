// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

// Built-in binary interaction tables. NRTL energies a12/a21 are in Kelvin
// (tau = a/T); UNIQUAC energies are in Kelvin (tau = exp(-a/T)).
//  References:
//   [1] Prausnitz JM, Lichtenthaler RN and Azevedo EG (1986) Molecular
//       Thermodynamics of Fluid-Phase Equilibria, 2nd ed (Tables 6-9, 6-10)
//   [2] DECHEMA Chemistry Data Series, VLE collection

var nrtlTable = map[pair]NRTLParams{
	// alcohol-water
	{"methanol", "water"}:    {A12: -39.56, A21: 196.24, Alpha: 0.30},
	{"ethanol", "water"}:     {A12: -0.80, A21: 0.50, Alpha: 0.30},
	{"1-propanol", "water"}:  {A12: 179.53, A21: 518.36, Alpha: 0.30},
	{"2-propanol", "water"}:  {A12: 101.30, A21: 388.20, Alpha: 0.30},
	{"1-butanol", "water"}:   {A12: 342.72, A21: 756.61, Alpha: 0.30},
	{"water", "trichloroethylene"}: {A12: 5.98775, A21: 3.60977, Alpha: 0.2485},
	{"trichloroethylene", "acetone"}: {A12: -0.19920, A21: -0.20102, Alpha: 0.30},

	// ketone-water
	{"acetone", "water"}:             {A12: 330.99, A21: -100.71, Alpha: 0.30},
	{"methyl ethyl ketone", "water"}: {A12: 444.04, A21: 13.52, Alpha: 0.30},

	// acid-water
	{"acetic acid", "water"}: {A12: -54.87, A21: 190.36, Alpha: 0.30},
	{"formic acid", "water"}: {A12: -120.35, A21: 98.24, Alpha: 0.30},

	// alkane-aromatic
	{"hexane", "benzene"}:  {A12: 0.0, A21: 0.0, Alpha: 0.30},
	{"heptane", "benzene"}: {A12: 0.0, A21: 0.0, Alpha: 0.30},
	{"octane", "benzene"}:  {A12: -19.27, A21: 6.81, Alpha: 0.30},
	{"hexane", "toluene"}:  {A12: 0.0, A21: 0.0, Alpha: 0.30},

	// alcohol-alkane
	{"ethanol", "hexane"}:   {A12: 626.42, A21: 282.67, Alpha: 0.30},
	{"ethanol", "heptane"}:  {A12: 651.30, A21: 291.89, Alpha: 0.30},
	{"ethanol", "octane"}:   {A12: -123.57, A21: 1354.92, Alpha: 0.30},
	{"methanol", "hexane"}:  {A12: 1075.20, A21: 196.38, Alpha: 0.30},
	{"methanol", "octane"}:  {A12: 379.31, A21: -108.42, Alpha: 0.30},

	// ketone-alkane
	{"acetone", "hexane"}:  {A12: 122.34, A21: 136.53, Alpha: 0.30},
	{"acetone", "heptane"}: {A12: 134.56, A21: 145.23, Alpha: 0.30},

	// ketone-alcohol
	{"acetone", "methanol"}: {A12: -39.76, A21: 237.69, Alpha: 0.30},
	{"acetone", "ethanol"}:  {A12: 47.92, A21: 176.05, Alpha: 0.30},

	// chlorinated
	{"chloroform", "acetone"}:  {A12: -171.71, A21: 93.93, Alpha: 0.30},
	{"chloroform", "ethanol"}:  {A12: -120.45, A21: 350.71, Alpha: 0.30},
	{"chloroform", "methanol"}: {A12: -58.87, A21: 301.24, Alpha: 0.30},

	// nitriles
	{"acetonitrile", "water"}:   {A12: 116.21, A21: 398.79, Alpha: 0.30},
	{"acetonitrile", "benzene"}: {A12: -40.70, A21: 299.79, Alpha: 0.30},

	// aromatics
	{"benzene", "ethanol"}: {A12: 471.08, A21: 38.28, Alpha: 0.30},
	{"benzene", "water"}:   {A12: 1271.32, A21: 595.42, Alpha: 0.20},
	{"toluene", "water"}:   {A12: 1346.59, A21: 623.27, Alpha: 0.20},

	// additional
	{"acetone", "benzene"}:  {A12: -25.45, A21: 89.32, Alpha: 0.30},
	{"methanol", "benzene"}: {A12: 523.71, A21: 151.83, Alpha: 0.30},
}

var uniquacTable = map[pair]UNIQUACParams{
	// alcohol-water
	{"methanol", "water"}:   {A12: -122.89, A21: 305.26},
	{"ethanol", "water"}:    {A12: -83.27, A21: 256.07},
	{"1-propanol", "water"}: {A12: 39.13, A21: 393.70},
	{"2-propanol", "water"}: {A12: -14.02, A21: 373.81},
	{"1-butanol", "water"}:  {A12: 171.77, A21: 546.52},

	// ketone-water
	{"acetone", "water"}:             {A12: 330.99, A21: -100.71},
	{"methyl ethyl ketone", "water"}: {A12: 422.69, A21: 22.96},

	// acid-water
	{"acetic acid", "water"}: {A12: -165.76, A21: 320.43},
	{"formic acid", "water"}: {A12: -144.58, A21: 241.64},

	// aromatic-alkane
	{"hexane", "benzene"}:  {A12: -7.97, A21: 6.27},
	{"heptane", "benzene"}: {A12: -9.42, A21: 7.53},
	{"octane", "benzene"}:  {A12: -11.03, A21: 8.96},
	{"hexane", "toluene"}:  {A12: -7.22, A21: 5.88},

	// alcohol-alkane
	{"ethanol", "hexane"}:  {A12: 337.09, A21: 61.24},
	{"ethanol", "heptane"}: {A12: 351.17, A21: 64.36},

	// ketone-alcohol
	{"acetone", "methanol"}: {A12: -50.31, A21: 176.12},
	{"acetone", "ethanol"}:  {A12: -25.10, A21: 123.45},

	// chlorinated
	{"chloroform", "acetone"}:  {A12: -171.71, A21: 93.93},
	{"chloroform", "ethanol"}:  {A12: -96.33, A21: 285.40},
	{"chloroform", "methanol"}: {A12: -40.45, A21: 249.86},

	// aromatics
	{"benzene", "ethanol"}: {A12: 337.74, A21: -42.96},
	{"acetonitrile", "benzene"}: {A12: -18.97, A21: 181.49},
}

// structuralTable holds relative volume r and surface area q per component;
// values from [1] Table 6-9
var structuralTable = map[string]Structural{
	"water":                  {R: 0.92, Q: 1.40},
	"methanol":               {R: 1.43, Q: 1.43},
	"ethanol":                {R: 2.11, Q: 1.97},
	"1-propanol":             {R: 2.78, Q: 2.51},
	"2-propanol":             {R: 2.78, Q: 2.51},
	"1-butanol":              {R: 3.45, Q: 3.05},
	"acetone":                {R: 2.57, Q: 2.34},
	"methyl ethyl ketone":    {R: 3.25, Q: 2.88},
	"methyl isobutyl ketone": {R: 4.60, Q: 4.03},
	"acetonitrile":           {R: 1.87, Q: 1.72},
	"acetic acid":            {R: 1.90, Q: 1.80},
	"formic acid":            {R: 1.54, Q: 1.48},
	"benzene":                {R: 3.19, Q: 2.40},
	"toluene":                {R: 3.92, Q: 2.97},
	"hexane":                 {R: 4.50, Q: 3.86},
	"heptane":                {R: 5.17, Q: 4.40},
	"octane":                 {R: 5.85, Q: 4.94},
	"chloroform":             {R: 2.70, Q: 2.34},
	"carbon tetrachloride":   {R: 3.33, Q: 2.82},
	"nitroethane":            {R: 2.68, Q: 2.41},
	"nitromethane":           {R: 2.01, Q: 1.87},
	"ethyl acetate":          {R: 3.48, Q: 3.12},
	"diethylamine":           {R: 3.68, Q: 3.17},
	"methylcyclopentane":     {R: 3.97, Q: 3.01},
}
