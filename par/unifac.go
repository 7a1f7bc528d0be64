// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import "strings"

// UNIFAC group-contribution tables: subgroup volume/area parameters (Rk,Qk),
// main-group interaction energies a_nm [K] (psi_nm = exp(-a_nm/T)), and the
// subgroup decomposition of each known molecule.
//  References:
//   [1] Smith JM, Van Ness HC and Abbott MM (2005) Introduction to Chemical
//       Engineering Thermodynamics, 7th ed, Tables G.1, G.2

// Subgroup holds one UNIFAC subgroup record
type Subgroup struct {
	Main int     // main group the subgroup belongs to
	Name string  // e.g. "CH3", "OH", "H2O"
	Rk   float64 // relative volume
	Qk   float64 // relative surface area
}

// GroupCount is one (subgroup, multiplicity) entry of a molecule's
// decomposition
type GroupCount struct {
	Sub   int
	Count int
}

// GroupsOf returns the subgroup decomposition of a component, or
// found==false when the molecule is not in the table
func (o *Database) GroupsOf(c string) (gc []GroupCount, found bool) {
	gc, found = o.groups[strings.ToLower(c)]
	return
}

// SubgroupOf returns one subgroup record
func (o *Database) SubgroupOf(id int) (s Subgroup, found bool) {
	s, found = o.subgroups[id]
	return
}

// GroupInteraction returns the main-group interaction energy a_mn [K].
// Missing entries (including m==n) mean zero energy, i.e. psi = 1.
func (o *Database) GroupInteraction(m, n int) float64 {
	return o.maininter[pair2{m, n}]
}

// SetGroups stores a molecule decomposition (file loading and tests)
func (o *Database) SetGroups(c string, gc []GroupCount) {
	o.groups[strings.ToLower(c)] = gc
}

// SetSubgroup stores a subgroup record
func (o *Database) SetSubgroup(id int, s Subgroup) {
	o.subgroups[id] = s
}

// SetGroupInteraction stores one main-group interaction energy
func (o *Database) SetGroupInteraction(m, n int, a float64) {
	o.maininter[pair2{m, n}] = a
}

var subgroupTable = map[int]Subgroup{
	1:  {Main: 1, Name: "CH3", Rk: 0.9011, Qk: 0.848},
	2:  {Main: 1, Name: "CH2", Rk: 0.6744, Qk: 0.540},
	3:  {Main: 1, Name: "CH", Rk: 0.4469, Qk: 0.228},
	4:  {Main: 1, Name: "C", Rk: 0.2195, Qk: 0.000},
	10: {Main: 3, Name: "ACH", Rk: 0.5313, Qk: 0.400},
	12: {Main: 4, Name: "ACCH3", Rk: 1.2663, Qk: 0.968},
	13: {Main: 4, Name: "ACCH2", Rk: 1.0396, Qk: 0.660},
	15: {Main: 5, Name: "OH", Rk: 1.0000, Qk: 1.200},
	17: {Main: 7, Name: "H2O", Rk: 0.9200, Qk: 1.400},
	19: {Main: 9, Name: "CH3CO", Rk: 1.6724, Qk: 1.488},
	20: {Main: 9, Name: "CH2CO", Rk: 1.4457, Qk: 1.180},
	25: {Main: 13, Name: "CH3O", Rk: 1.1450, Qk: 1.088},
	26: {Main: 13, Name: "CH2O", Rk: 0.9183, Qk: 0.780},
	27: {Main: 13, Name: "CH-O", Rk: 0.6908, Qk: 0.468},
	32: {Main: 15, Name: "CH3NH", Rk: 1.4337, Qk: 1.244},
	33: {Main: 15, Name: "CH2NH", Rk: 1.2070, Qk: 0.936},
	34: {Main: 15, Name: "CHNH", Rk: 0.9795, Qk: 0.624},
}

// mainInteraction holds a_nm [K] between main groups; Table G.2 subset
var mainInteraction = map[pair2]float64{
	{1, 3}: 61.13, {1, 4}: 76.50, {1, 5}: 986.50, {1, 7}: 1318.00, {1, 9}: 476.40, {1, 13}: 251.50, {1, 15}: 255.70, {1, 19}: 597.00,
	{3, 1}: -11.12, {3, 4}: 167.00, {3, 5}: 636.10, {3, 7}: 903.80, {3, 9}: 25.77, {3, 13}: 32.14, {3, 15}: 122.80, {3, 19}: 212.50,
	{4, 1}: -69.70, {4, 3}: -146.80, {4, 5}: 803.20, {4, 7}: 5695.00, {4, 9}: -52.10, {4, 13}: 213.10, {4, 15}: -49.29, {4, 19}: 6096.00,
	{5, 1}: 156.40, {5, 3}: 89.60, {5, 4}: 25.82, {5, 7}: 353.50, {5, 9}: 84.00, {5, 13}: 28.06, {5, 15}: 42.70, {5, 19}: 6.712,
	{7, 1}: 300.00, {7, 3}: 362.30, {7, 4}: 377.60, {7, 5}: -229.10, {7, 9}: -195.40, {7, 13}: 540.50, {7, 15}: 168.00, {7, 19}: 112.60,
	{9, 1}: 26.76, {9, 3}: 140.10, {9, 4}: 365.80, {9, 5}: 164.50, {9, 7}: 472.50, {9, 13}: -103.60, {9, 15}: -174.20, {9, 19}: 481.70,
	{13, 1}: 83.36, {13, 3}: 52.13, {13, 4}: 65.69, {13, 5}: 237.70, {13, 7}: -114.70, {13, 9}: 191.10, {13, 15}: 251.50, {13, 19}: -18.51,
	{15, 1}: 65.33, {15, 3}: -22.31, {15, 4}: 223.00, {15, 5}: -150.00, {15, 7}: -448.20, {15, 9}: 394.60, {15, 13}: -56.08, {15, 19}: 147.10,
	{19, 1}: 24.82, {19, 3}: -22.97, {19, 4}: -138.40, {19, 5}: 185.40, {19, 7}: 242.80, {19, 9}: -287.50, {19, 13}: 38.81, {19, 15}: -108.50,
}

var moleculeGroups = map[string][]GroupCount{
	// alcohols
	"methanol":   {{1, 1}, {15, 1}},
	"ethanol":    {{1, 1}, {2, 1}, {15, 1}},
	"1-propanol": {{1, 1}, {2, 2}, {15, 1}},
	"2-propanol": {{1, 2}, {3, 1}, {15, 1}},
	"1-butanol":  {{1, 1}, {2, 3}, {15, 1}},

	// water
	"water": {{17, 1}},

	// ketones
	"acetone":             {{1, 2}, {19, 1}},
	"methyl ethyl ketone": {{1, 2}, {2, 1}, {19, 1}},

	// aromatics
	"benzene": {{10, 6}},
	"toluene": {{10, 5}, {12, 1}},

	// alkanes
	"hexane":  {{1, 2}, {2, 4}},
	"heptane": {{1, 2}, {2, 5}},
	"octane":  {{1, 2}, {2, 6}},
	"pentane": {{1, 2}, {2, 3}},
}
