// Copyright 2026 The Plataforma-Equilibrio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func verbose() {
	chk.Verbose = true
}

func Test_prop01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop01. built-in components and vapour pressures")

	db := NewDatabase()
	if !db.Has("water") || !db.Has("ethanol") || !db.Has("naphthalene") {
		tst.Errorf("built-in components are missing\n")
		return
	}

	// water boils at 100 C under 1 atm
	psat, err := db.VaporPressure("water", 373.15)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "psat water @ 373.15K", 200.0, psat, 101325.0)

	// water at 80 C
	psat, err = db.VaporPressure("water", 353.15)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "psat water @ 353.15K", 100.0, psat, 47270.0)

	// ethanol at 80 C
	psat, err = db.VaporPressure("ethanol", 353.15)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "psat ethanol @ 353.15K", 300.0, psat, 108270.0)

	// boiling point seed
	tb, err := db.BoilingPoint("ethanol")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "Tb ethanol", 1e-10, tb, 351.44)
}

func Test_prop02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop02. failures and cache reset")

	db := NewDatabase()

	// unknown component
	if _, err := db.Get("unobtainium"); err == nil {
		tst.Errorf("Get should have failed for an unknown component\n")
		return
	}
	if _, err := db.VaporPressure("unobtainium", 300.0); err == nil {
		tst.Errorf("VaporPressure should have failed for an unknown component\n")
		return
	}

	// non-positive temperature
	if _, err := db.VaporPressure("water", -1.0); err == nil {
		tst.Errorf("VaporPressure should have failed for a negative temperature\n")
		return
	}

	// reload restores the built-in table
	db.ReadJSON("data", "extra.json")
	if !db.Has("cyclohexane") {
		tst.Errorf("extra component was not loaded\n")
		return
	}
	db.Reset()
	if db.Has("cyclohexane") {
		tst.Errorf("Reset did not discard loaded components\n")
		return
	}
	if !db.Has("water") {
		tst.Errorf("Reset did not restore the built-in table\n")
		return
	}
}

func Test_prop03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop03. loading extra components")

	db := NewDatabase()
	err := db.ReadJSON("data", "extra.json")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	c, err := db.Get("cyclohexane")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Scalar(tst, "Tb cyclohexane", 1e-10, c.Tb, 353.89)

	// cyclohexane boils near 354 K under 1 atm
	psat := c.VaporPressure(353.89)
	chk.Scalar(tst, "psat cyclohexane @ Tb", 2000.0, psat, 101325.0)
}
