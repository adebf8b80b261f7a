/*
* Main GUI application file
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/mappu/miqt/qt"
	"github.com/mappu/miqt/qt/mainthread"
)

func runGUI(cfg *Config, logger *Logger) {
	qt.NewQApplication(os.Args)
	window := qt.NewQMainWindow(nil)
	window.SetWindowTitle("Entropy Detection App")
	window.SetMinimumSize2(500, 300)
	window.SetStyleSheet("background-color: #2C3E50; color: white;")

	widget := qt.NewQWidget(nil)
	mainLayout := qt.NewQVBoxLayout(widget)

	uploadButton := qt.NewQPushButton4(qt.QIcon_FromTheme("document-open"), "Upload File")
	uploadButton.SetStyleSheet("background-color: #1ABC9C; color: white; padding: 10px; border-radius: 5px; font-weight: bold;")
	mainLayout.AddWidget(uploadButton.QWidget)

	entropyLabel := qt.NewQLabel3("Entropy: N/A")
	entropyLabel.SetWordWrap(true)
	mainLayout.AddWidget(entropyLabel.QWidget)

	// Log window (read-only)
	detailsWindow := qt.NewQTextEdit4("", widget)
	detailsWindow.SetReadOnly(true)
	detailsWindow.SetFont(qt.NewQFont2("monospace"))
	mainLayout.AddWidget(detailsWindow.QWidget)

	uploadButton.OnClicked(func() {
		fileDialog := qt.NewQFileDialog4(widget, "Open File")
		fileDialog.SetFileMode(qt.QFileDialog__ExistingFile)
		fileDialog.SetNameFilter("All Files (*.*)")
		if fileDialog.Exec() != int(qt.QDialog__Accepted) {
			return
		}
		selectedFile := fileDialog.SelectedFiles()
		if len(selectedFile) == 0 {
			return
		}

		detailsWindow.Clear()
		uploadButton.SetEnabled(false)
		entropyLabel.SetText(fmt.Sprintf("Analyzing %s...", filepath.Base(selectedFile[0])))

		startAnalysisJob(selectedFile[0], cfg, logger, mainthread.Wait, func(result analysisJobResult) {
			defer uploadButton.SetEnabled(true)
			if result.err != nil {
				entropyLabel.SetText(MessageForError(result.err, cfg))
				return
			}

			analysis := result.analysis
			entropyLabel.SetText(FormatEntropyLine(analysis.Entropy, analysis.Class))
			for _, line := range DetailLines(analysis) {
				detailsWindow.Append(line)
			}
			if result.plotPath != "" {
				showPlotWindow(analysis, result.plotPath)
			}
		})
	})

	window.SetCentralWidget(widget)
	window.Show()
	qt.QApplication_Exec()
}

// showPlotWindow opens the rendered plot in a separate window. Must run on
// the Qt main thread.
func showPlotWindow(analysis *Analysis, plotPath string) {
	plotWindow := qt.NewQMainWindow(nil)
	plotWindow.SetWindowTitle(fmt.Sprintf("Entropy Plot - %s", filepath.Base(analysis.FileName)))
	plotLabel := qt.NewQLabel3(fmt.Sprintf(`<img src="%s">`, html.EscapeString(plotPath)))
	plotWindow.SetCentralWidget(plotLabel.QWidget)
	plotWindow.Show()
}
