package main

import (
	"oss.terrastruct.com/shapes/lib/xmain"
	"oss.terrastruct.com/shapes/shapecli"
)

func main() {
	xmain.Main(shapecli.Run)
}
