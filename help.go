// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **bbst %s**

Self-balancing binary search trees you can poke at from the terminal. Insert, remove and search
integer keys in an AVL tree or a Red-Black tree and watch the structure rebalance.

Built with Go %s

# 1. Commands
* **run** opens the interactive menu (the default when no command is given)
* **script FILE** runs one session command per line, # starts a comment
* **demo** plays a short scripted walk-through
* **bench** loads 1..N into both engines and compares heights
* **chart** plots tree height against the number of keys
* **settings** shows and creates ~/.bbst.yaml

# 2. Session commands
* insert|i KEY... inserts keys, duplicates are ignored
* remove|rm KEY... removes keys
* search|s KEY... looks keys up
* show draws the tree
* info prints size, height and the keys in order
* clear drops every key
* engine avl|rb switches engine and keeps the keys
* help, quit

# 3. Engines
* **AVL**: every node keeps the heights of its subtrees within one of each other
* **Red-Black**: no red node has a red child and every path to a leaf crosses the same number of black nodes

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
