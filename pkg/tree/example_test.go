package tree_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/arbor/pkg/tree"
)

// exampleTree builds R(A(C), B).
func exampleTree() *tree.Node {
	root, _ := tree.New("R")
	a, _ := tree.New("A")
	b, _ := tree.New("B")
	c, _ := tree.New("C")
	_ = root.Add(a)
	_ = root.Add(b)
	_ = a.Add(c)
	return root
}

func visitNames(seq func(func(*tree.Node) bool)) string {
	var names []string
	for n := range seq {
		names = append(names, n.Name())
	}
	return strings.Join(names, " ")
}

func ExampleNode_basic() {
	root := exampleTree()

	fmt.Println("Size:", root.Size())
	fmt.Println("Height:", root.Height())
	fmt.Println("Path of C:", root.FindPath("A/C").Path())
	// Output:
	// Size: 4
	// Height: 2
	// Path of C: /R/A/C
}

func ExampleNode_All() {
	root := exampleTree()

	fmt.Println("pre: ", visitNames(root.All()))
	fmt.Println("post:", visitNames(root.PostOrder()))
	fmt.Println("bfs: ", visitNames(root.BreadthFirst()))
	// Output:
	// pre:  R A C B
	// post: C A B R
	// bfs:  R A B C
}

func ExampleNode_Levels() {
	root := exampleTree()

	depth := 0
	for level := range root.Levels() {
		names := make([]string, len(level))
		for i, n := range level {
			names[i] = n.Name()
		}
		fmt.Printf("level %d: %s\n", depth, strings.Join(names, " "))
		depth++
	}
	// Output:
	// level 0: R
	// level 1: A B
	// level 2: C
}

func ExampleNode_Compare() {
	root := exampleTree()
	a := root.ChildByName("A")
	b := root.ChildByName("B")

	// siblings are incomparable on a direct ancestry line,
	// but ordered when siblings count
	_, ok, _ := a.Compare(b, tree.PolicyDirectOnly)
	fmt.Println("direct comparable:", ok)

	c, ok, _ := a.Compare(b, tree.PolicyDirectOrSibling)
	fmt.Println("sibling comparable:", ok, "- A first:", c < 0)
	// Output:
	// direct comparable: false
	// sibling comparable: true - A first: true
}

func ExampleBuild() {
	records := []tree.Record{
		{Name: "R"},
		{Name: "A", Parent: "R"},
		{Name: "C", Parent: "A"},
		{Name: "B", Parent: "R"},
	}
	root, _ := tree.Build(records)

	fmt.Println(visitNames(root.All()))
	// Output:
	// R A C B
}
