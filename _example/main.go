package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/quadtree"
	"github.com/hupe1980/quadtree/geom"
	"github.com/hupe1980/quadtree/model"
	"github.com/hupe1980/quadtree/testutil"
)

func main() {
	seed := int64(4711)
	size := 200000
	threshold := 16

	boundary := geom.Rect{X: 0, Y: 0, Width: 10000, Height: 10000}
	rng := testutil.NewRNG(seed)

	idx, err := quadtree.New[int](threshold, boundary, quadtree.WithMaxDepth(32))
	if err != nil {
		log.Fatal(err)
	}

	pts := rng.UniformPoints(size, boundary)
	entries := make([]model.Entry[int], 0, size)

	fmt.Println("--- Insert ---")
	fmt.Println("Threshold:", threshold)
	fmt.Println("Size:", size)

	start := time.Now()

	for i, p := range pts {
		e, err := idx.Insert(p, i)
		if err != nil {
			log.Fatal(err)
		}
		entries = append(entries, e)
	}

	end := time.Since(start)

	fmt.Printf("Seconds: %.2f\n\n", end.Seconds())

	query := geom.Circle{Center: rng.UniformPoints(1, boundary)[0], Radius: 100}

	fmt.Println("--- Circle ---")

	start = time.Now()

	result, err := idx.QueryCircle(query.Center, query.Radius)
	if err != nil {
		log.Fatal(err)
	}

	end = time.Since(start)

	fmt.Println("Results:", len(result))
	fmt.Printf("Seconds: %.8f\n\n", end.Seconds())

	fmt.Println("--- Brute ---")

	start = time.Now()

	brute := testutil.BruteCircle(entries, query)

	end = time.Since(start)

	fmt.Println("Results:", len(brute))
	fmt.Printf("Seconds: %.8f\n\n", end.Seconds())
}
