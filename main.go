package main

import (
	"fmt"
	"os"

	"github.com/tuannh982/map2d/map2d"
	"github.com/tuannh982/map2d/utils/collections"

	log "github.com/sirupsen/logrus"
)

type Day string

type Hour int

func main() {
	logger := log.WithFields(log.Fields{"app": "timetable"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(log.InfoLevel)
	if os.Getenv("MAP2D_DEBUG") != "" {
		logger.Logger.SetLevel(log.DebugLevel)
	}

	timetable := map2d.NewWithLogger[Day, Hour, string](logger.WithField("component", "map2d"))
	if err := timetable.PutAllToRow(collections.FromMap(map[Hour]string{
		8:  "math",
		10: "physics",
		12: "lunch",
	}), "mon"); err != nil {
		logger.WithError(err).Fatal("could not fill monday")
	}
	if err := timetable.PutAllToColumn(collections.FromMap(map[Day]string{
		"tue": "lunch",
		"wed": "lunch",
	}), 12); err != nil {
		logger.WithError(err).Fatal("could not fill lunch hour")
	}
	if prev, existed, err := timetable.Put("mon", 10, "chemistry"); err != nil {
		logger.WithError(err).Fatal("could not update monday")
	} else if existed {
		logger.Infof("mon 10:00 %s replaced by chemistry", prev)
	}
	logger.WithFields(log.Fields{
		"cells": timetable.Size(),
		"days":  len(timetable.Rows()),
	}).Info("timetable built")
	fmt.Print(timetable)

	for _, day := range map2d.SortedRows(timetable) {
		logger.Infof("%s: %v", day, timetable.RowView(day).ToMap())
	}
	for _, hour := range map2d.SortedColumns(timetable) {
		logger.Infof("%02d:00: %v", hour, timetable.ColumnView(hour).ToMap())
	}

	labelled, err := map2d.CopyWithConversion(timetable, func(d Day) string {
		return string(d)
	}, func(h Hour) string {
		return fmt.Sprintf("%02d:00", h)
	}, func(s string) int {
		return len(s)
	})
	if err != nil {
		logger.WithError(err).Fatal("could not convert timetable")
	}
	fmt.Print(labelled)

	if _, ok := timetable.Remove("tue", 12); ok {
		logger.Infof("tue cleared: %t", !timetable.ContainsRow("tue"))
	}
	timetable.Clear()
	logger.Infof("cleared, empty=%t", timetable.IsEmpty())
}
