// Package main provides localization for the lapsestamp CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI and summary messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":            "出力",
		"Label":             "ラベル",
		"Video and Quality": "動画と品質",
		"Logging":           "ログ",

		// Root command
		"Stamp the time of capture onto every frame of a time-lapse clip": "タイムラプス動画の各フレームに撮影時刻を描画",

		// Version command
		"Show version information": "バージョン情報を表示",
		"lapsestamp version %s":    "lapsestamp バージョン %s",

		// Output flags
		"Output MP4 file path (required)":           "出力MP4ファイルパス（必須）",
		"Overwrite the output file if it exists":    "出力ファイルが存在する場合は上書き",
		"Rotate every frame (left, right, flip)":    "全フレームを回転（left, right, flip）",
		"Write a Markdown run summary to this path": "実行サマリーをMarkdownで出力するパス",
		"YAML configuration file":                   "YAML設定ファイル",

		// Label flags
		"TrueType font file for the label (default: embedded)": "ラベル用TrueTypeフォントファイル（デフォルト: 内蔵フォント）",
		"Label font size in points":                            "ラベルのフォントサイズ（ポイント）",
		"IANA time zone for the label (default: local)":        "ラベルのIANAタイムゾーン（デフォルト: ローカル）",

		// Video flags
		"Video quality (0-63, lower is better, 0 for the encoder default)": "動画品質（0-63、低いほど高品質、0でエンコーダーの既定値）",
		"Path to the ffmpeg binary":                                        "ffmpegバイナリのパス",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "すべてのログ出力を抑制",
		"Do not draw the progress bar":         "進捗バーを表示しない",

		// Usage errors
		"Exactly one input file is required": "入力ファイルを1つ指定してください",
		"Output path is required (-o)":       "出力パスを指定してください（-o）",
		"Invalid configuration: %s":          "設定が不正です: %s",

		// Runtime messages
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Error headlines
		"Output file exists; pass -f to overwrite":               "出力ファイルが既に存在します。上書きするには -f を指定してください",
		"Cannot read the input clip":                             "入力動画を読み込めません",
		"Cannot load the label font":                             "ラベルのフォントを読み込めません",
		"Decoding failed":                                        "デコードに失敗しました",
		"Encoding failed":                                        "エンコードに失敗しました",
		"Drawing the label failed":                               "ラベルの描画に失敗しました",
		"ffmpeg was not found; install it or pass --ffmpeg-path": "ffmpegが見つかりません。インストールするか --ffmpeg-path を指定してください",
		"Interrupted":                                            "中断されました",

		// Summary
		"Stamping Summary":  "撮影時刻描画サマリー",
		"Source Clip":       "元動画",
		"Capture Time":      "撮影時刻",
		"Item":              "項目",
		"Value":             "値",
		"File":              "ファイル",
		"Codec":             "コーデック",
		"Dimensions":        "サイズ",
		"Frames":            "フレーム数",
		"Frame Rate":        "フレームレート",
		"Start":             "開始",
		"End":               "終了",
		"Real Duration":     "実時間",
		"Seconds per Frame": "1フレームあたりの時間",
		"Labels":            "ラベル",
		"Playback Duration": "再生時間",
		"File Size":         "ファイルサイズ",
		"Settings":          "設定",
		"Rotation":          "回転",
		"Label Resolution":  "ラベルの刻み",
		"Time Zone":         "タイムゾーン",
		"Embedded":          "内蔵",
		"Font":              "フォント",
		"Quality":           "品質",
		"Bitrate":           "ビットレート",
		"Preset":            "プリセット",
		"Notes":             "注記",
		"Generated by":      "生成:",

		// Summary notes
		"The output frame rate differs from the source clip's frame rate.":                       "出力のフレームレートが元動画のフレームレートと異なります。",
		"The number of frames written differs from the number reported by the source container.": "書き込んだフレーム数が元動画のコンテナが報告したフレーム数と異なります。",
	})
}
