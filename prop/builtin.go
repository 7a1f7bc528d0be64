// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

// builtin holds the default component table. Antoine coefficients follow the
// log10(P[mmHg]) = A - B/(T[K]+C) form (Lange's Handbook / NIST values).
// Tfus/Hfus are zero when solid-liquid data is not tabulated.
var builtin = []Component{
	{Name: "water", Formula: "H2O", MW: 18.015, Tb: 373.15, Tc: 647.10, Pc: 22.064e6, Omega: 0.3449,
		Tfus: 273.15, Hfus: 6010, AntA: 8.07131, AntB: 1730.630, AntC: -39.724},
	{Name: "ethanol", Formula: "C2H6O", MW: 46.069, Tb: 351.44, Tc: 513.92, Pc: 6.148e6, Omega: 0.6436,
		Tfus: 159.05, Hfus: 4931, AntA: 8.20417, AntB: 1642.890, AntC: -42.850},
	{Name: "methanol", Formula: "CH4O", MW: 32.042, Tb: 337.85, Tc: 512.64, Pc: 8.097e6, Omega: 0.5625,
		Tfus: 175.47, Hfus: 3215, AntA: 7.89750, AntB: 1474.080, AntC: -44.020},
	{Name: "acetone", Formula: "C3H6O", MW: 58.080, Tb: 329.22, Tc: 508.10, Pc: 4.700e6, Omega: 0.3071,
		Tfus: 178.45, Hfus: 5772, AntA: 7.11714, AntB: 1210.595, AntC: -43.486},
	{Name: "benzene", Formula: "C6H6", MW: 78.114, Tb: 353.24, Tc: 562.05, Pc: 4.895e6, Omega: 0.2103,
		Tfus: 278.68, Hfus: 9866, AntA: 6.90565, AntB: 1211.033, AntC: -52.360},
	{Name: "toluene", Formula: "C7H8", MW: 92.141, Tb: 383.79, Tc: 591.75, Pc: 4.108e6, Omega: 0.2640,
		Tfus: 178.18, Hfus: 6636, AntA: 6.95464, AntB: 1344.800, AntC: -53.670},
	{Name: "hexane", Formula: "C6H14", MW: 86.177, Tb: 341.88, Tc: 507.60, Pc: 3.025e6, Omega: 0.3013,
		Tfus: 177.84, Hfus: 13080, AntA: 6.87601, AntB: 1171.170, AntC: -48.740},
	{Name: "heptane", Formula: "C7H16", MW: 100.204, Tb: 371.57, Tc: 540.20, Pc: 2.740e6, Omega: 0.3495,
		Tfus: 182.59, Hfus: 14037, AntA: 6.89677, AntB: 1264.900, AntC: -56.610},
	{Name: "chloroform", Formula: "CHCl3", MW: 119.377, Tb: 334.33, Tc: 536.40, Pc: 5.472e6, Omega: 0.2219,
		Tfus: 209.65, Hfus: 9500, AntA: 6.90328, AntB: 1163.030, AntC: -45.750},
	{Name: "acetic acid", Formula: "C2H4O2", MW: 60.052, Tb: 391.05, Tc: 591.95, Pc: 5.786e6, Omega: 0.4665,
		Tfus: 289.80, Hfus: 11540, AntA: 7.38782, AntB: 1533.313, AntC: -50.850},
	{Name: "1-butanol", Formula: "C4H10O", MW: 74.122, Tb: 390.88, Tc: 563.10, Pc: 4.414e6, Omega: 0.5895,
		Tfus: 183.35, Hfus: 9372, AntA: 7.47680, AntB: 1362.390, AntC: -94.430},
	{Name: "2-propanol", Formula: "C3H8O", MW: 60.096, Tb: 355.41, Tc: 508.30, Pc: 4.765e6, Omega: 0.6689,
		Tfus: 183.65, Hfus: 5410, AntA: 8.11778, AntB: 1580.920, AntC: -53.540},
	{Name: "acetonitrile", Formula: "C2H3N", MW: 41.053, Tb: 354.75, Tc: 545.50, Pc: 4.830e6, Omega: 0.3380,
		Tfus: 229.35, Hfus: 8167, AntA: 7.33986, AntB: 1482.290, AntC: -22.630},
	{Name: "trichloroethylene", Formula: "C2HCl3", MW: 131.388, Tb: 360.36, Tc: 571.00, Pc: 4.910e6, Omega: 0.2170,
		Tfus: 188.40, Hfus: 11180, AntA: 7.02808, AntB: 1315.040, AntC: -43.150},
	{Name: "naphthalene", Formula: "C10H8", MW: 128.174, Tb: 491.14, Tc: 748.40, Pc: 4.050e6, Omega: 0.3020,
		Tfus: 353.43, Hfus: 18980, AntA: 6.81810, AntB: 1585.860, AntC: -88.330},
}
