package y2023

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/input"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Puzzle{
		Year:  2023,
		Day:   8,
		Name:  "Haunted Wasteland",
		Part1: wastelandSteps,
		Part2: ghostSteps,
	})
}

type network struct {
	tape  string // cyclic L/R instructions
	nodes map[string][2]string
}

func parseNetwork(in string) (*network, error) {
	blocks := input.Blocks(in)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("expected instruction line and node block")
	}

	n := &network{tape: blocks[0][0], nodes: make(map[string][2]string)}
	for _, line := range blocks[1] {
		name, pair, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("malformed node line %q", line)
		}
		pair = strings.Trim(pair, "()")
		left, right, ok := strings.Cut(pair, ", ")
		if !ok {
			return nil, fmt.Errorf("malformed node pair %q", line)
		}
		n.nodes[name] = [2]string{left, right}
	}
	return n, nil
}

// walk follows the tape from start until done reports the current node,
// returning the step count.
func (n *network) walk(start string, done func(string) bool) (int, error) {
	node := start
	for steps := 0; ; steps++ {
		if done(node) {
			return steps, nil
		}
		next, ok := n.nodes[node]
		if !ok {
			return 0, fmt.Errorf("walked off the network at %q", node)
		}
		switch n.tape[steps%len(n.tape)] {
		case 'L':
			node = next[0]
		case 'R':
			node = next[1]
		default:
			return 0, fmt.Errorf("bad instruction %q", n.tape[steps%len(n.tape)])
		}
	}
}

func wastelandSteps(in string) (string, error) {
	n, err := parseNetwork(in)
	if err != nil {
		return "", err
	}
	steps, err := n.walk("AAA", func(node string) bool { return node == "ZZZ" })
	if err != nil {
		return "", err
	}
	return strconv.Itoa(steps), nil
}

func ghostSteps(in string) (string, error) {
	n, err := parseNetwork(in)
	if err != nil {
		return "", err
	}

	// Every *A start settles into a cycle whose length equals its first
	// *Z arrival, so the joint arrival is the LCM of the per-start walks.
	answer := 1
	found := false
	for name := range n.nodes {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		found = true
		steps, err := n.walk(name, func(node string) bool {
			return strings.HasSuffix(node, "Z")
		})
		if err != nil {
			return "", err
		}
		answer = lcm(answer, steps)
	}
	if !found {
		return "", fmt.Errorf("no start nodes ending in A")
	}
	return strconv.Itoa(answer), nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
