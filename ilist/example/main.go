package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/webbmaffian/go-ilist/ilist"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		list  ilist.List
		links [15]ilist.Link
		data  [15]int32
	)

	for i := range links {
		data[i] = int32(i)

		if err := ilist.InitValue(&links[i], &data[i]); err != nil {
			log.Fatal().Err(err).Int("link", i).Msg("init failed")
		}
	}

	if err := list.SetCapacity(3); err != nil {
		log.Fatal().Err(err).Msg("set capacity failed")
	}

	for i := 0; i < 5; i++ {
		if err := list.InsertLast(&links[i]); err != nil {
			log.Warn().Err(err).Int("link", i).Msg("insert last rejected")
			continue
		}

		log.Info().Int("link", i).Msg("inserted last")
	}

	if err := list.Remove(&links[0]); err != nil {
		log.Fatal().Err(err).Msg("remove failed")
	}

	length, _ := list.Len()
	log.Info().Int("length", length).Msg("removed link 0")

	link, err := list.Head()

	for err == nil {
		v, _ := link.DebugInt32()
		log.Info().Int32("data", v).Msg("forward")
		link, err = link.Next()
	}

	log.Info().Err(err).Msg("end of forward walk")

	link, err = list.Tail()

	for err == nil {
		v, _ := link.DebugInt32()
		log.Info().Int32("data", v).Msg("backward")
		link, err = link.Prev()
	}

	log.Info().Err(err).Msg("end of backward walk")

	if err = list.Verify(); err != nil {
		log.Fatal().Err(err).Msg("list is corrupt")
	}
}
