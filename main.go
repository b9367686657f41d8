package main

import (
	"github.com/RadostW/glm-mda-diffusion/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
