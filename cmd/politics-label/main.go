package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/coshx/tweet-politics/internal/tweets"
)

func main() {
	var (
		begin = flag.Int("begin", 0, "Index of the first tweet to label")
		end   = flag.Int("end", -1, "Index after the last tweet to label (default: all)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-begin N] [-end M] tweets.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	recs, err := tweets.OpenRecords(path)
	if err != nil {
		log.Fatal("Failed to open tweets:", err)
	}

	first, last := *begin, *end
	if last < 0 || last > recs.Len() {
		last = recs.Len()
	}
	if first < 0 || first > last {
		log.Fatalf("invalid range [%d, %d) for %d tweets", first, last, recs.Len())
	}

	in := bufio.NewScanner(os.Stdin)
	labeled := 0
	for i := first; i < last; i++ {
		tw, err := recs.Tweet(i)
		if err != nil {
			log.Printf("Warning: skipping tweet %d: %v", i, err)
			continue
		}

		fmt.Println()
		fmt.Println("ID:", tw.ID)
		fmt.Println(asciiOnly(tw.Text))

		political, ok := ask(in)
		if !ok {
			break
		}
		recs.SetLabel(i, political)
		labeled++
	}

	if err := recs.Save(); err != nil {
		log.Fatal("Failed to save labels:", err)
	}
	log.Printf("Labeled %d tweets in %s", labeled, path)
}

// ask prompts until the answer is y or n. ok is false at end of input.
func ask(in *bufio.Scanner) (political, ok bool) {
	for {
		fmt.Print("Is this a political tweet (y/n)? ")
		if !in.Scan() {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "y":
			return true, true
		case "n":
			return false, true
		}
	}
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 127 {
			return -1
		}
		return r
	}, s)
}
