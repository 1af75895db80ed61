package board

import errs "github.com/tilesmith/boggen/pkg/errors"

// DiceSet is a named catalog of dice, one die per board position. Each die
// is a string of faces; every face is a letter or a compound code.
type DiceSet struct {
	Name string // lookup key, e.g. "5-big-deluxe"
	Desc string // display name
	Size int    // board edge length the set was designed for
	Dice []string
}

// Sets returns the built-in dice catalogs, classic and revised Boggle-style
// layouts from 4x4 through 6x6.
func Sets() []DiceSet { return diceSets }

// SetByName finds a built-in dice set.
func SetByName(name string) (DiceSet, error) {
	if err := errs.ValidateDiceSetName(name); err != nil {
		return DiceSet{}, err
	}
	for _, s := range diceSets {
		if s.Name == name {
			return s, nil
		}
	}
	return DiceSet{}, errs.New(errs.ErrCodeDiceSetNotFound, "unknown dice set %q", name)
}

var diceSets = []DiceSet{
	{
		Name: "4-classic",
		Desc: "4x4 Classic",
		Size: 4,
		Dice: []string{
			"AACIOT", "ABILTY", "ABJMOQ", "ACDEMP",
			"ACELRS", "ADENVZ", "AHMORS", "BIFORX",
			"DENOSW", "DKNOTU", "EEFHIY", "EGKLUY",
			"EGINTV", "EHINPS", "ELPSTU", "GILRUW",
		},
	},
	{
		Name: "4",
		Desc: "4x4 Revised",
		Size: 4,
		Dice: []string{
			"AAEEGN", "ABBJOO", "ACHOPS", "AFFKPS",
			"AOOTTW", "CIMOTU", "DEILRX", "DELRVY",
			"DISTTY", "EEGHNW", "EEINSU", "EHRTVW",
			"EIOSST", "ELRTTY", "HIMNU1", "HLNNRZ",
		},
	},
	{
		Name: "5-orig",
		Desc: "5x5 Original",
		Size: 5,
		Dice: []string{
			"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM",
			"AEEGMU", "AEGMNN", "AFIRSY", "BJK1XZ", "CCENST",
			"CEIILT", "CEIPST", "DDHNOT", "DHHLOR", "DHHLOR",
			"DHLNOR", "EIIITT", "CEILPT", "EMOTTT", "ENSSSU",
			"FIPRSY", "GORRVW", "IPRRRY", "NOOTUW", "OOOTTU",
		},
	},
	{
		Name: "5-challenge",
		Desc: "5x5 Challenge",
		Size: 5,
		Dice: []string{
			"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM",
			"AEEGMU", "AEGMNN", "AFIRSY", "BJK1XZ", "CCENST",
			"CEIILT", "CEIPST", "DDHNOT", "DHHLOR", "IKLM1U",
			"DHLNOR", "EIIITT", "CEILPT", "EMOTTT", "ENSSSU",
			"FIPRSY", "GORRVW", "IPRRRY", "NOOTUW", "OOOTTU",
		},
	},
	{
		Name: "5-big-deluxe",
		Desc: "5x5 Big Deluxe",
		Size: 5,
		Dice: []string{
			"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM",
			"AEEGMU", "AEGMNN", "AFIRSY", "BJK1XZ", "CCNSTW",
			"CEIILT", "CEIPST", "DDLNOR", "DHHLOR", "DHHNOT",
			"DHLNOR", "EIIITT", "CEILPT", "EMOTTT", "ENSSSU",
			"FIPRSY", "GORRVW", "HIPRRY", "NOOTUW", "OOOTTU",
		},
	},
	{
		Name: "5",
		Desc: "5x5 Big 2012",
		Size: 5,
		Dice: []string{
			"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM",
			"AEEGMU", "AEGMNN", "AFIRSY", "BBJKXZ", "CCENST",
			"EIILST", "CEIPST", "DDHNOT", "DHHLOR", "DHHNOW",
			"DHLNOR", "EIIITT", "EILPST", "EMOTTT", "ENSSSU",
			"123456", "GORRVW", "IPRSYY", "NOOTUW", "OOOTTU",
		},
	},
	{
		Name: "6-super",
		Desc: "6x6 Super Big",
		Size: 6,
		Dice: []string{
			"AAAFRS", "AAEEEE", "AAEEOO", "AAFIRS", "ABDEIO", "ADENNN",
			"AEEEEM", "AEEGMU", "AEGMNN", "AEILMN", "AEINOU", "AFIRSY",
			"123456", "BBJKXZ", "CCENST", "CDDLNN", "CEIITT", "CEIPST",
			"CFGNUY", "DDHNOT", "DHHLOR", "DHHNOW", "DHLNOR", "EHILRS",
			"EIILST", "EILPST", "EIO000", "EMTTTO", "ENSSSU", "GORRVW",
			"HIRSTV", "HOPRST", "IPRSYY", "JK1WXZ", "NOOTUW", "OOOTTU",
		},
	},
	{
		Name: "6",
		Desc: "6x6 Super Big Simple",
		Size: 6,
		Dice: []string{
			"AAAFRS", "AAEEEE", "AAEEOO", "AAFIRS", "ABDEIO", "ADENNN",
			"AEEEEM", "AEEGMU", "AEGMNN", "AEILMN", "AEINOU", "AFIRSY",
			"AEIOUS", "BBJKXZ", "CCENST", "CDDLNN", "CEIITT", "CEIPST",
			"CFGNUY", "DDHNOT", "DHHLOR", "DHHNOW", "DHLNOR", "EHILRS",
			"EIILST", "EILPST", "EIOSSS", "EMTTTO", "ENSSSU", "GORRVW",
			"HIRSTV", "HOPRST", "IPRSYY", "JK1WXZ", "NOOTUW", "OOOTTU",
		},
	},
}
