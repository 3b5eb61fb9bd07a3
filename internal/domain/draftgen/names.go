package draftgen

import "math/rand"

// Name pools for generated prospects. Small on purpose; collisions across
// seasons are harmless since identity lives in the UUID.
var firstNames = []string{
	"Marcus", "Deion", "Tyler", "Jamal", "Brett", "Curtis", "Devin", "Troy",
	"Isaiah", "Walter", "Reggie", "Dante", "Cole", "Elijah", "Frank", "Grant",
	"Hollis", "Jerome", "Kendall", "Lamont", "Miles", "Nolan", "Omar", "Preston",
	"Quentin", "Rashad", "Silas", "Terrell", "Vance", "Warren", "Xavier", "Zeke",
}

var lastNames = []string{
	"Abernathy", "Barnes", "Caldwell", "Dillard", "Everett", "Foster", "Granger",
	"Hawkins", "Ingram", "Jefferson", "Kowalski", "Lattimore", "McCray", "Norwood",
	"Okafor", "Pruitt", "Quarles", "Rollins", "Sanders", "Thibodeaux", "Upshaw",
	"Vereen", "Whitfield", "Yancey", "Zimmerman", "Beaumont", "Crowder", "Driscoll",
}

func pickName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}
