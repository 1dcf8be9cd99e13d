package panelcheck

import (
	"fmt"

	"github.com/aouyang1/go-panelcheck/panel"
)

func Example_checkNestedTable() {
	tbl, err := panel.TableFromSeries(
		[]string{"temperature"},
		[][]panel.Series{
			{
				{20.1, 20.4, 20.9},
				{18.7, 18.2, 17.9},
			},
		},
	)
	if err != nil {
		panic(err)
	}
	y := panel.Series{1.0, 0.0}

	if _, _, err := CheckXY(tbl, y, nil); err != nil {
		panic(err)
	}

	res, err := CheckX(tbl, &FeatureOptions{
		ReturnDense:         true,
		EnforceMinInstances: 1,
		EnforceMinColumns:   1,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(res.(*panel.Dense).Shape())
	// Output:
	// [2 1 3]
}
