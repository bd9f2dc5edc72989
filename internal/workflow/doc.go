// Package workflow は書籍出版セッションを管理する
//
// 進捗は擬似的なもので、ステータス取得のたびに一定量だけ進む。
// Advance はストアの排他付き更新の中で実行されるため、同じセッションへの
// 同時ポーリングで進捗の読み書きが交錯することはない。
package workflow
