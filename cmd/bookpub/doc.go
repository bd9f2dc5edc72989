// Command bookpub は起動中の書籍出版サーバーをターミナルから操作する
//
// ワークフローの開始、状態の取得、ヘルスチェックを行う。
// 画面と同じく、状態を取得するたびに進捗が進む。
package main
