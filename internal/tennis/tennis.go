/*
Package tennis provides the classic "play tennis" data set, crisply
fuzzified, for tests throughout the module.
*/
package tennis

import (
	"math"

	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/tree"
)

// Attributes lists the attributes of the set and their terms in column
// order. The last attribute is the class.
var Attributes = []struct {
	Name  string
	Terms []string
}{
	{"Outlook", []string{"Sunny", "Overcast", "Rain"}},
	{"Temperature", []string{"Hot", "Mild", "Cool"}},
	{"Humidity", []string{"High", "Normal"}},
	{"Wind", []string{"Weak", "Strong"}},
	{"Plan", []string{"Yes", "No"}},
}

// LHS are the condition attributes of the set.
var LHS = []string{"Outlook", "Temperature", "Humidity", "Wind"}

// RHS is the class attribute of the set.
const RHS = "Plan"

// Rows holds the fourteen observations of the set.
var Rows = [][]string{
	{"Sunny", "Hot", "High", "Weak", "No"},
	{"Sunny", "Hot", "High", "Strong", "No"},
	{"Overcast", "Hot", "High", "Weak", "Yes"},
	{"Rain", "Mild", "High", "Weak", "Yes"},
	{"Rain", "Cool", "Normal", "Weak", "Yes"},
	{"Rain", "Cool", "Normal", "Strong", "No"},
	{"Overcast", "Cool", "Normal", "Strong", "Yes"},
	{"Sunny", "Mild", "High", "Weak", "No"},
	{"Sunny", "Cool", "Normal", "Weak", "Yes"},
	{"Rain", "Mild", "Normal", "Weak", "Yes"},
	{"Sunny", "Mild", "Normal", "Strong", "Yes"},
	{"Overcast", "Mild", "High", "Strong", "Yes"},
	{"Overcast", "Hot", "Normal", "Weak", "Yes"},
	{"Rain", "Mild", "High", "Strong", "No"},
}

// Column returns the values of the i-th attribute for every row.
func Column(i int) []string {
	result := make([]string, len(Rows))
	for j, r := range Rows {
		result[j] = r[i]
	}
	return result
}

// Variable returns the crisp variable of the i-th attribute.
func Variable(i int) *fuzzy.Variable {
	a := Attributes[i]
	fv := fuzzy.NewVariable(a.Name)
	for _, t := range a.Terms {
		values := make([]float64, len(Rows))
		for j, r := range Rows {
			if r[i] == t {
				values[j] = 1.0
			}
		}
		if err := fv.Add(t, values); err != nil {
			panic(err)
		}
	}
	return fv
}

// Set returns the crisp fuzzy set of all the attributes.
func Set() *fuzzy.Set {
	s, err := fuzzy.NewSet()
	if err != nil {
		panic(err)
	}
	for i := range Attributes {
		if err := s.Add(Variable(i)); err != nil {
			panic(err)
		}
	}
	return s
}

// Alpha and Beta are the thresholds Tree is grown with.
const (
	Alpha = 0.1
	Beta  = 0.7
)

/*
Tree returns the tree grown from Set with Alpha, Beta, LHS and RHS, built
node by node in the order growth creates them:

	Humidity
	|__High: Outlook
	|  |__Sunny: No
	|  |__Overcast: Yes
	|  |__Rain: Wind
	|     |__Weak: Yes
	|     |__Strong: No
	|__Normal: Yes
*/
func Tree() *tree.Tree {
	t := tree.New(Alpha, Beta, LHS, RHS, []string{"Yes", "No"}, Set())
	must := func(id int, err error) int {
		if err != nil {
			panic(err)
		}
		return id
	}
	root := must(t.AddRoot("Humidity", 0.31769245775664157))
	outlook := must(t.AddDecision(root, "High", "Outlook", 2.0/7.0*math.Ln2))
	must(t.AddLeaf(root, "Normal", "Yes", 6.0/7.0))
	must(t.AddLeaf(outlook, "Sunny", "No", 1))
	must(t.AddLeaf(outlook, "Overcast", "Yes", 1))
	wind := must(t.AddDecision(outlook, "Rain", "Wind", 0))
	must(t.AddLeaf(wind, "Weak", "Yes", 1))
	must(t.AddLeaf(wind, "Strong", "No", 1))
	return t
}
