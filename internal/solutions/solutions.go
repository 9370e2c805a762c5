// Package solutions pulls in every year package for its registration side
// effect, the way database/sql drivers are linked in.
package solutions

import (
	_ "advent/internal/solutions/y2018"
	_ "advent/internal/solutions/y2019"
	_ "advent/internal/solutions/y2020"
	_ "advent/internal/solutions/y2021"
	_ "advent/internal/solutions/y2022"
	_ "advent/internal/solutions/y2023"
)
