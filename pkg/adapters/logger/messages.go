package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":                             "パイプラインを開始します",
		"Clip has %d frames at %dx%d, last captured %s": "クリップ: %d フレーム, %dx%d, 最終撮影 %s",
		"Stamping %d frames into %s":                    "%d フレームに時刻を描画して %s に出力中",
		"Output saved to %s":                            "出力を %s に保存しました",
		"Pipeline completed successfully":               "パイプラインが正常に完了しました",
		"Summary saved to %s":                           "サマリーを %s に保存しました",

		// Stamp stage
		"Streaming %d frames with rotation %s": "%d フレームを回転 %s で処理中",
		"Streamed %d frames":                   "%d フレームを処理しました",

		// Adapters
		"Starting %s %s": "%s %s を起動中",

		// Warnings
		"Output %s exists and will be overwritten":                   "出力 %s は既に存在するため上書きします",
		"Source plays at %.2f fps but output is written at %.2f fps": "元動画は %.2f fps ですが、出力は %.2f fps で書き込まれます",
		"Decoded %d frames but the container reported %d":            "%d フレームをデコードしましたが、コンテナの報告は %d フレームです",
		"Frame %d is beyond the probed frame count %d":               "フレーム %d は検出したフレーム数 %d を超えています",
		"Failed to close decoder: %s":                                "デコーダーの終了に失敗しました: %s",
		"Interrupted, shutting down...":                              "中断しました。終了しています...",

		// Errors
		"Validation failed: %s": "検証に失敗しました: %s",
		"Run failed: %s":        "処理に失敗しました: %s",
	})
}
