package services

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"admin-console/internal/authz"
	"admin-console/internal/navigation"
)

const (
	SheetRoutes     = "Routes"
	SheetNavigation = "Navigation"
)

var (
	routesHeaders     = []interface{}{"Шаблон пути", "Страница", "Классификация", "Права (любое из)"}
	navigationHeaders = []interface{}{"Секция", "Группа", "Пункт меню", "Путь", "Классификация", "Права (любое из)"}
)

type ReportServiceInterface interface {
	// AccessMatrix - xlsx с таблицей прав и меню.
	AccessMatrix() (*excelize.File, error)
}

type reportService struct {
	table  *authz.Table
	tree   []navigation.Node
	logger *zap.Logger
}

func NewReportService(table *authz.Table, tree []navigation.Node, logger *zap.Logger) ReportServiceInterface {
	return &reportService{table: table, tree: tree, logger: logger}
}

func (s *reportService) AccessMatrix() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetRoutes); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetNavigation); err != nil {
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := s.writeRoutes(f, style); err != nil {
		f.Close()
		return nil, fmt.Errorf("лист %s: %w", SheetRoutes, err)
	}
	if err := s.writeNavigation(f, style); err != nil {
		f.Close()
		return nil, fmt.Errorf("лист %s: %w", SheetNavigation, err)
	}

	s.logger.Debug("Матрица доступа собрана", zap.Int("routes", s.table.Len()))
	return f, nil
}

func (s *reportService) writeRoutes(f *excelize.File, style int) error {
	if err := f.SetSheetRow(SheetRoutes, "A1", &routesHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetRoutes, "A1", "D1", style); err != nil {
		return err
	}

	pages := navigation.Pages(s.tree)
	for i, e := range s.table.Entries() {
		title := ""
		if p, ok := navigation.FindPage(pages, e.Pattern); ok {
			title = p.Title
		}
		res := s.table.Resolve(e.Pattern)
		row := []interface{}{e.Pattern, title, string(res.Classification), strings.Join(e.Requirement.Permissions, ", ")}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetRoutes, cell, &row); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(SheetRoutes, "A", "A", 40)
	_ = f.SetColWidth(SheetRoutes, "B", "C", 20)
	_ = f.SetColWidth(SheetRoutes, "D", "D", 50)
	return nil
}

func (s *reportService) writeNavigation(f *excelize.File, style int) error {
	if err := f.SetSheetRow(SheetNavigation, "A1", &navigationHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetNavigation, "A1", "F1", style); err != nil {
		return err
	}

	rowNum := 2
	write := func(section, group string, l navigation.Link) error {
		res := s.table.Resolve(l.Path)
		row := []interface{}{section, group, l.Title, l.Path, string(res.Classification), strings.Join(res.Requirement.Permissions, ", ")}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		rowNum++
		return f.SetSheetRow(SheetNavigation, cell, &row)
	}

	var walk func(section string, n navigation.Node) error
	walk = func(section string, n navigation.Node) error {
		switch v := n.(type) {
		case navigation.Link:
			return write(section, "", v)
		case navigation.Dropdown:
			for _, l := range v.Items {
				if err := write(section, v.Title, l); err != nil {
					return err
				}
			}
		case navigation.Section:
			for _, item := range v.Items {
				if err := walk(v.Title, item); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, n := range s.tree {
		if err := walk("", n); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(SheetNavigation, "A", "C", 20)
	_ = f.SetColWidth(SheetNavigation, "D", "D", 40)
	_ = f.SetColWidth(SheetNavigation, "F", "F", 50)
	return nil
}
